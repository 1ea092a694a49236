package depth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/echosight/echosight/pkg/depth"
)

func TestHTTPSensor(t *testing.T) {
	ctx := context.Background()

	t.Run("available and reading", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/health":
				w.WriteHeader(http.StatusOK)
			case "/distance":
				json.NewEncoder(w).Encode(map[string]float64{"meters": 1.5})
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()

		s := depth.NewHTTPSensor(srv.URL, nil)
		if !s.Available(ctx) {
			t.Fatal("expected sensor to be available")
		}

		meters, ok := s.ReadCenterDistance(ctx)
		if !ok {
			t.Fatal("expected a reading")
		}
		if meters != 1.5 {
			t.Errorf("expected 1.5m, got %v", meters)
		}
	})

	t.Run("read failure degrades, never errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		s := depth.NewHTTPSensor(srv.URL, nil)
		if _, ok := s.ReadCenterDistance(ctx); ok {
			t.Error("expected failed read")
		}
	})

	t.Run("non-positive reading rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]float64{"meters": 0})
		}))
		defer srv.Close()

		s := depth.NewHTTPSensor(srv.URL, nil)
		if _, ok := s.ReadCenterDistance(ctx); ok {
			t.Error("expected zero reading to be rejected")
		}
	})

	t.Run("empty base URL is unavailable", func(t *testing.T) {
		s := depth.NewHTTPSensor("", nil)
		if s.Available(ctx) {
			t.Error("expected unavailable")
		}
	})
}

func TestNone(t *testing.T) {
	var s depth.None
	if s.Available(context.Background()) {
		t.Error("None must never be available")
	}
	if _, ok := s.ReadCenterDistance(context.Background()); ok {
		t.Error("None must never read")
	}
}
