package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-service/catalog"
	"storefront-service/store"
)

func TestProductHandler_ListProducts(t *testing.T) {
	t.Run("seeds the demo catalog once on an empty store", func(t *testing.T) {
		st := store.NewMemory()
		router := newTestRouter(st, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		count, _ := st.CountDocuments(context.Background(), catalog.ProductCollection)
		if count != 3 {
			t.Fatalf("expected 3 seeded products, got %d", count)
		}

		// A second listing must not seed again.
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

		count, _ = st.CountDocuments(context.Background(), catalog.ProductCollection)
		if count != 3 {
			t.Errorf("expected no additional inserts, got %d products", count)
		}
	})

	t.Run("surfaces product ids as strings", func(t *testing.T) {
		router := newTestRouter(store.NewMemory(), nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

		var resp struct {
			Products []struct {
				ID         string `json:"id"`
				Slug       string `json:"slug"`
				PriceCents int64  `json:"price_cents"`
			} `json:"products"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(resp.Products) != 3 {
			t.Fatalf("expected 3 products, got %d", len(resp.Products))
		}
		for _, p := range resp.Products {
			if p.ID == "" {
				t.Errorf("product %s has no string id", p.Slug)
			}
		}
	})

	t.Run("returns an empty list without a store", func(t *testing.T) {
		router := newTestRouter(store.Disconnected(), nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if rec.Body.String() != `{"products":[]}` {
			t.Errorf("expected empty product list, got %s", rec.Body.String())
		}
	})
}

func TestProductHandler_GetProduct(t *testing.T) {
	t.Run("returns a product by slug", func(t *testing.T) {
		router := newTestRouter(seededStore(t), nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/happy-duck-tee", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var resp struct {
			ID         string `json:"id"`
			Title      string `json:"title"`
			PriceCents int64  `json:"price_cents"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Title != "Happy Duck Tee" {
			t.Errorf("expected Happy Duck Tee, got %s", resp.Title)
		}
		if resp.PriceCents != 2499 {
			t.Errorf("expected price 2499, got %d", resp.PriceCents)
		}
		if resp.ID == "" {
			t.Errorf("expected a string id")
		}
	})

	t.Run("returns 404 for an unknown slug", func(t *testing.T) {
		router := newTestRouter(seededStore(t), nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/no-such-tee", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})

	t.Run("returns 404 without a store", func(t *testing.T) {
		router := newTestRouter(store.Disconnected(), nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/happy-duck-tee", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})
}
