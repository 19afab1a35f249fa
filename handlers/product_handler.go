package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/catalog"
	"storefront-service/models"
	"storefront-service/store"
)

type ProductHandler struct {
	catalog *catalog.Service
	logger  *slog.Logger
}

func NewProductHandler(cat *catalog.Service, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{catalog: cat, logger: logger}
}

// ListProducts handles GET /api/products. Listing triggers seeding of the
// demo catalog when the store is empty.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "STORE_ERROR",
			Message: "Failed to list products",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ProductListResponse{Products: products})
}

// GetProduct handles GET /api/products/:slug
func (h *ProductHandler) GetProduct(c *gin.Context) {
	slug := c.Param("slug")

	product, err := h.catalog.GetProduct(c.Request.Context(), slug)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Product not found",
		})
		return
	}
	if err != nil {
		h.logger.Error("failed to get product", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "STORE_ERROR",
			Message: "Failed to get product",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, product)
}
