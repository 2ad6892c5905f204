package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/velora-dev/go-storefront/app/models/other"
	"github.com/velora-dev/go-storefront/app/utils/themes"
)

// StoreInfoClient fetches the store configuration (theme id plus
// color/typography tokens). It is called once at startup; a failed fetch is
// not fatal, the app falls back to the baked-in default tokens.
type StoreInfoClient interface {
	FetchStoreInfo(ctx context.Context) (themes.Settings, error)
}

type storeInfoService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewStoreInfoClient(baseURL, apiKey string) StoreInfoClient {
	return &storeInfoService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *storeInfoService) FetchStoreInfo(ctx context.Context) (themes.Settings, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/store-info", nil)
	if err != nil {
		return themes.Default(), fmt.Errorf("failed to build store-info request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		req.Header.Set("key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return themes.Default(), fmt.Errorf("store-info request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return themes.Default(), fmt.Errorf("failed to read store-info response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return themes.Default(), fmt.Errorf("store-info returned status %d: %s", resp.StatusCode, string(body))
	}

	var envelope other.APIEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return themes.Default(), fmt.Errorf("failed to decode store-info envelope: %w", err)
	}
	if !envelope.Success {
		return themes.Default(), fmt.Errorf("store-info error: %d - %s", envelope.Status, envelope.Message)
	}

	var raw other.APIStoreInfo
	if err := json.Unmarshal(envelope.Data, &raw); err != nil {
		return themes.Default(), fmt.Errorf("failed to decode store-info payload: %w", err)
	}
	return raw.ToSettings(), nil
}
