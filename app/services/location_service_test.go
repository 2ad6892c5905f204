package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStateCityByPincode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/customer/state-city-by-pincode" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload["pincode"] != "400001" {
			t.Errorf("payload = %v, err %v", payload, err)
		}
		_, _ = w.Write([]byte(`{"success": true, "status": 200, "data": {"state": "Maharashtra", "city": "Mumbai"}}`))
	}))
	defer server.Close()

	client := NewLocationClient(server.URL, "")
	sc, err := client.StateCityByPincode(context.Background(), "400001")
	if err != nil {
		t.Fatalf("StateCityByPincode: %v", err)
	}
	if sc.State != "Maharashtra" || sc.City != "Mumbai" {
		t.Errorf("got %+v", sc)
	}
}

func TestStateCityByPincodeEnvelopeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "status": 422, "message": "unknown pincode"}`))
	}))
	defer server.Close()

	client := NewLocationClient(server.URL, "")
	if _, err := client.StateCityByPincode(context.Background(), "000000"); err == nil {
		t.Errorf("expected an error for an unsuccessful envelope")
	}
}
