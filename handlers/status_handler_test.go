package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-service/catalog"
	"storefront-service/models"
	"storefront-service/store"
)

func TestStatusHandler_Root(t *testing.T) {
	router := newTestRouter(store.NewMemory(), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != `{"message":"Duck Tees API ready"}` {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestStatusHandler_TestStore(t *testing.T) {
	t.Run("reports a connected store with its collections", func(t *testing.T) {
		st := store.NewMemory()
		cat := catalog.NewService(st, testLogger())
		cat.EnsureSeedProducts(context.Background())
		router := newTestRouter(st, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

		var resp models.StoreDiagnostics
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.ConnectionStatus != "Connected" {
			t.Errorf("expected Connected, got %s", resp.ConnectionStatus)
		}
		if len(resp.Collections) != 1 || resp.Collections[0] != "product" {
			t.Errorf("unexpected collections: %v", resp.Collections)
		}
	})

	t.Run("reports a missing store", func(t *testing.T) {
		router := newTestRouter(store.Disconnected(), nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

		var resp models.StoreDiagnostics
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.ConnectionStatus != "Not Connected" {
			t.Errorf("expected Not Connected, got %s", resp.ConnectionStatus)
		}
		if resp.Backend != "running" {
			t.Errorf("expected backend running, got %s", resp.Backend)
		}
	})
}
