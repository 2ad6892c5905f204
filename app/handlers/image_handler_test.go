package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/unrolled/render"
	"github.com/velora-dev/go-storefront/app/utils/images"
)

func TestImagePresentationEndpoint(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer origin.Close()

	resolver := images.Resolver{OriginBase: origin.URL, CDNBase: origin.URL + "/cdn"}
	h := NewImageHandler(resolver, origin.Client(), render.New())

	req := httptest.NewRequest(http.MethodGet, "/api/images/presentation?src=/p/img.webp", nil)
	rec := httptest.NewRecorder()
	h.Presentation(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		OriginURL   string `json:"origin_url"`
		CDNURL      string `json:"cdn_url"`
		Progressive bool   `json:"progressive"`
		DisplayURL  string `json:"display_url"`
		Loaded      bool   `json:"loaded"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if body.OriginURL != origin.URL+"/p/img.webp" {
		t.Errorf("origin_url = %q", body.OriginURL)
	}
	if !body.Progressive {
		t.Errorf("progressive = false, want true for distinct CDN and origin URLs")
	}
	// the handler waits for the probe, so the final URL is already the origin
	if !body.Loaded || body.DisplayURL != body.OriginURL {
		t.Errorf("display = (%q, loaded=%v), want the loaded origin", body.DisplayURL, body.Loaded)
	}
}

func TestImagePresentationEmptySource(t *testing.T) {
	h := NewImageHandler(images.Resolver{OriginBase: "https://assets.example.com"}, nil, render.New())

	req := httptest.NewRequest(http.MethodGet, "/api/images/presentation", nil)
	rec := httptest.NewRecorder()
	h.Presentation(rec, req)

	var body struct {
		DisplayURL  string `json:"display_url"`
		Progressive bool   `json:"progressive"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.DisplayURL != images.PlaceholderPath || body.Progressive {
		t.Errorf("empty src: %+v, want the placeholder, not progressive", body)
	}
}
