package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/velora-dev/go-storefront/app/models"
	"github.com/velora-dev/go-storefront/app/models/other"
)

var ErrProductNotFound = errors.New("product not found")

// StoreAPIClient talks to the backend store API that owns the catalog. The
// storefront never stores products locally; everything product-shaped comes
// through here and is normalized at this boundary.
type StoreAPIClient interface {
	GetProductDetail(ctx context.Context, slug string) (*models.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]models.Product, int64, error)
	SearchProducts(ctx context.Context, query string, limit, offset int) ([]models.Product, int64, error)
	ListByCategory(ctx context.Context, categorySlug string, limit, offset int) ([]models.Product, int64, error)
	FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error)
}

type storeAPIService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewStoreAPIClient(baseURL, apiKey string) StoreAPIClient {
	return &storeAPIService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *storeAPIService) doRequest(ctx context.Context, method, fullPath string, body []byte) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+fullPath, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.apiKey != "" {
		req.Header.Set("key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read store API response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("store API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var envelope other.APIEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode store API envelope: %w", err)
	}
	if !envelope.Success {
		if envelope.Status == http.StatusNotFound {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("store API error: %d - %s", envelope.Status, envelope.Message)
	}
	return envelope.Data, nil
}

func (s *storeAPIService) GetProductDetail(ctx context.Context, slug string) (*models.Product, error) {
	data, err := s.doRequest(ctx, http.MethodGet, "/products/details/"+url.PathEscape(slug), nil)
	if err != nil {
		return nil, err
	}
	var raw other.APIProduct
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode product detail: %w", err)
	}
	product := other.NormalizeProduct(raw)
	return &product, nil
}

type productListPayload struct {
	Products []other.APIProduct `json:"products"`
	Total    int64              `json:"total"`
}

func (s *storeAPIService) list(ctx context.Context, fullPath string) ([]models.Product, int64, error) {
	data, err := s.doRequest(ctx, http.MethodGet, fullPath, nil)
	if err != nil {
		return nil, 0, err
	}
	var payload productListPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, 0, fmt.Errorf("failed to decode product list: %w", err)
	}
	products := make([]models.Product, 0, len(payload.Products))
	for _, raw := range payload.Products {
		products = append(products, other.NormalizeProduct(raw))
	}
	return products, payload.Total, nil
}

func (s *storeAPIService) ListProducts(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("offset", fmt.Sprintf("%d", offset))
	return s.list(ctx, "/products?"+params.Encode())
}

func (s *storeAPIService) SearchProducts(ctx context.Context, query string, limit, offset int) ([]models.Product, int64, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("offset", fmt.Sprintf("%d", offset))
	return s.list(ctx, "/products/search?"+params.Encode())
}

func (s *storeAPIService) ListByCategory(ctx context.Context, categorySlug string, limit, offset int) ([]models.Product, int64, error) {
	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("offset", fmt.Sprintf("%d", offset))
	return s.list(ctx, "/products/category/"+url.PathEscape(categorySlug)+"?"+params.Encode())
}

func (s *storeAPIService) FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", limit))
	products, _, err := s.list(ctx, "/products/featured?"+params.Encode())
	return products, err
}
