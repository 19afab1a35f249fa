package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/models"
	"storefront-service/store"
)

type StatusHandler struct {
	store store.Store
}

func NewStatusHandler(st store.Store) *StatusHandler {
	return &StatusHandler{store: st}
}

// Root handles GET / as a liveness message.
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Duck Tees API ready"})
}

// TestStore handles GET /test, a diagnostic of store connectivity.
func (h *StatusHandler) TestStore(c *gin.Context) {
	resp := models.StoreDiagnostics{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	stats := h.store.Stats(c.Request.Context())
	switch {
	case stats.Connected:
		resp.Database = "connected"
		resp.DatabaseName = stats.DatabaseName
		resp.ConnectionStatus = "Connected"
		if stats.Collections != nil {
			resp.Collections = stats.Collections
		}
	case stats.Error != "":
		resp.Database = "error: " + stats.Error
	}

	c.JSON(http.StatusOK, resp)
}
