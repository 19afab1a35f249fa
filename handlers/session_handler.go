package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/models"
)

type SessionHandler struct {
	provider CheckoutProvider
	logger   *slog.Logger
}

func NewSessionHandler(provider CheckoutProvider, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{provider: provider, logger: logger}
}

// GetSessionStatus handles GET /api/stripe/session/:session_id. Only the
// provider is consulted; no local order state is read or updated.
func (h *SessionHandler) GetSessionStatus(c *gin.Context) {
	if h.provider == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "NOT_CONFIGURED",
			Message: "Stripe is not configured",
		})
		return
	}

	sessionID := c.Param("session_id")

	sess, err := h.provider.GetCheckoutSession(sessionID)
	if err != nil {
		h.logger.Warn("failed to retrieve checkout session", "session_id", sessionID, "error", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "PAYMENT_PROVIDER_ERROR",
			Message: "Failed to retrieve checkout session",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.SessionStatusResponse{
		ID:            sess.ID,
		PaymentStatus: string(sess.PaymentStatus),
		Status:        string(sess.Status),
		AmountTotal:   sess.AmountTotal,
		Currency:      string(sess.Currency),
	})
}
