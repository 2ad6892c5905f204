package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/velora-dev/go-storefront/app/models/other"
)

// LocationClient resolves state/city suggestions for the address form.
type LocationClient interface {
	StateCityByPincode(ctx context.Context, pincode string) (*other.StateCity, error)
}

type locationService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewLocationClient(baseURL, apiKey string) LocationClient {
	return &locationService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *locationService) StateCityByPincode(ctx context.Context, pincode string) (*other.StateCity, error) {
	payload, err := json.Marshal(map[string]string{"pincode": pincode})
	if err != nil {
		return nil, fmt.Errorf("failed to encode pincode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/customer/state-city-by-pincode", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build pincode request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		req.Header.Set("key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pincode request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read pincode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pincode lookup returned status %d: %s", resp.StatusCode, string(body))
	}

	var envelope other.APIEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode pincode envelope: %w", err)
	}
	if !envelope.Success {
		return nil, fmt.Errorf("pincode lookup error: %d - %s", envelope.Status, envelope.Message)
	}

	var sc other.StateCity
	if err := json.Unmarshal(envelope.Data, &sc); err != nil {
		return nil, fmt.Errorf("failed to decode pincode payload: %w", err)
	}
	return &sc, nil
}
