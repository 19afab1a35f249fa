package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"

	"storefront-service/catalog"
	"storefront-service/models"
	"storefront-service/rabbitmq"
	"storefront-service/store"
)

// OrderCollection is the store collection holding pending orders.
const OrderCollection = "order"

// CheckoutProvider is the slice of the payment provider the handlers need.
// *clients.StripeClient implements it; tests substitute a fake.
type CheckoutProvider interface {
	CreateCheckoutSession(lineItems []*stripe.CheckoutSessionLineItemParams, successURL, cancelURL string) (*stripe.CheckoutSession, error)
	GetCheckoutSession(id string) (*stripe.CheckoutSession, error)
}

type CheckoutHandler struct {
	catalog     *catalog.Service
	provider    CheckoutProvider
	store       store.Store
	publisher   *rabbitmq.Publisher
	frontendURL string
	logger      *slog.Logger
}

func NewCheckoutHandler(cat *catalog.Service, provider CheckoutProvider, st store.Store, publisher *rabbitmq.Publisher, frontendURL string, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		catalog:     cat,
		provider:    provider,
		store:       st,
		publisher:   publisher,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// CreateCheckoutSession handles POST /api/create-checkout-session.
//
// Every cart line is priced from the catalog; a client-supplied price never
// enters the total. If any slug fails to resolve the whole checkout fails
// before the provider is called.
func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	if h.provider == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "NOT_CONFIGURED",
			Message: "Stripe is not configured",
		})
		return
	}

	var items []models.CartItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "EMPTY_CART",
			Message: "Cart is empty",
		})
		return
	}

	ctx := c.Request.Context()

	var (
		lineItems     []*stripe.CheckoutSessionLineItemParams
		orderItems    []models.OrderItem
		computedTotal int64
	)
	for _, item := range items {
		product, err := h.catalog.GetProduct(ctx, item.Slug)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "NOT_FOUND",
				Message: fmt.Sprintf("Product %s not found", item.Slug),
			})
			return
		}
		if err != nil {
			h.logger.Error("failed to resolve cart item", "slug", item.Slug, "error", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "STORE_ERROR",
				Message: "Failed to resolve cart item",
				Details: err.Error(),
			})
			return
		}

		qty := item.NormalizedQuantity()
		computedTotal += product.PriceCents * int64(qty)

		orderItems = append(orderItems, models.OrderItem{
			Slug:       item.Slug,
			Title:      product.Title,
			Quantity:   qty,
			PriceCents: product.PriceCents,
			Size:       item.Size,
			Color:      item.Color,
		})

		currency := product.Currency
		if currency == "" {
			currency = "eur"
		}
		name := product.Title
		if name == "" {
			name = "Duck Tee"
		}
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(name),
		}
		if len(product.Images) > 0 {
			productData.Images = stripe.StringSlice(product.Images[:1])
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(qty)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(currency),
				UnitAmount:  stripe.Int64(product.PriceCents),
				ProductData: productData,
			},
		})
	}

	successURL := h.frontendURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"
	cancelURL := h.frontendURL + "/cart"

	sess, err := h.provider.CreateCheckoutSession(lineItems, successURL, cancelURL)
	if err != nil {
		h.logger.Error("failed to create checkout session", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "PAYMENT_PROVIDER_ERROR",
			Message: "Failed to create checkout session",
			Details: err.Error(),
		})
		return
	}

	// Customer identity is not captured before payment, so the pending order
	// carries a placeholder email.
	order := models.Order{
		Email:           "unknown",
		Items:           orderItems,
		AmountTotal:     computedTotal,
		Currency:        "eur",
		StripeSessionID: sess.ID,
	}

	// Recording and announcing the order are best-effort: a failed secondary
	// write must not block the checkout response.
	if err := h.store.CreateDocument(ctx, OrderCollection, order); err != nil {
		h.logger.Warn("failed to record pending order", "session_id", sess.ID, "error", err)
	}
	if h.publisher != nil {
		if err := h.publisher.PublishOrder(ctx, order); err != nil {
			h.logger.Warn("failed to publish pending order", "session_id", sess.ID, "error", err)
		}
	}

	h.logger.Info("checkout session created", "session_id", sess.ID, "amount_total", computedTotal, "lines", len(orderItems))

	c.JSON(http.StatusOK, models.CheckoutSessionResponse{ID: sess.ID, URL: sess.URL})
}
