package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dentalcare360/storefront/internal/application"
	"github.com/dentalcare360/storefront/pkg/response"
	"github.com/dentalcare360/storefront/pkg/validation"
)

type CheckoutHandler struct {
	Checkout *application.Checkout
	Cart     *application.CartStore
	Logger   *logrus.Logger
}

func NewCheckoutHandler(checkout *application.Checkout, cart *application.CartStore, logger *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{Checkout: checkout, Cart: cart, Logger: logger}
}

type placeOrderRequest struct {
	SelectedAddressID string `json:"selectedAddressId"`
	Street            string `json:"street" binding:"required"`
	Number            string `json:"number" binding:"required"`
	Complement        string `json:"complement"`
	Neighborhood      string `json:"neighborhood" binding:"required"`
	City              string `json:"city" binding:"required"`
	State             string `json:"state" binding:"required"`
	ZipCode           string `json:"zipCode" binding:"required"`
	PaymentMethod     string `json:"paymentMethod" binding:"required"`
}

func (h *CheckoutHandler) statePayload() gin.H {
	stage, orderID := h.Checkout.State()
	return gin.H{
		"stage":     stage,
		"orderId":   orderID,
		"itemCount": h.Cart.ItemCount(),
		"total":     h.Cart.Total(),
	}
}

// GetState GET /api/checkout
func (h *CheckoutHandler) GetState(c *gin.Context) {
	response.Success(c, http.StatusOK, h.statePayload(), "checkout state", nil)
}

// Advance POST /api/checkout/advance
// Checkout may not start, or move forward, with an empty cart.
func (h *CheckoutHandler) Advance(c *gin.Context) {
	if h.Cart.ItemCount() == 0 {
		response.Error[any](c, http.StatusConflict, "cart is empty", nil)
		return
	}
	if _, err := h.Checkout.Advance(); err != nil {
		h.writeCheckoutError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.statePayload(), "stage advanced", nil)
}

// Back POST /api/checkout/back
func (h *CheckoutHandler) Back(c *gin.Context) {
	h.Checkout.Back()
	response.Success(c, http.StatusOK, h.statePayload(), "stage retreated", nil)
}

// Reset POST /api/checkout/reset
func (h *CheckoutHandler) Reset(c *gin.Context) {
	h.Checkout.Reset()
	response.Success(c, http.StatusOK, h.statePayload(), "checkout reset", nil)
}

// PlaceOrder POST /api/checkout/order
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	order, err := h.Checkout.PlaceOrder(c.Request.Context(), application.PlaceOrderInput{
		SelectedAddressID: req.SelectedAddressID,
		Street:            req.Street,
		Number:            req.Number,
		Complement:        req.Complement,
		Neighborhood:      req.Neighborhood,
		City:              req.City,
		State:             req.State,
		ZipCode:           req.ZipCode,
		PaymentMethod:     req.PaymentMethod,
	})
	if err != nil {
		h.writeCheckoutError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, order, "order placed", nil)
}

func (h *CheckoutHandler) writeCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrCartEmpty):
		response.Error[any](c, http.StatusConflict, "cart is empty", nil)
	case errors.Is(err, application.ErrCheckoutComplete):
		response.Error[any](c, http.StatusConflict, "checkout already complete", nil)
	case errors.Is(err, application.ErrOrderRequired):
		response.Error[any](c, http.StatusConflict, "order placement required to advance", nil)
	case errors.Is(err, application.ErrPaymentStageRequired):
		response.Error[any](c, http.StatusConflict, "payment stage required to place an order", nil)
	default:
		h.Logger.WithError(err).Error("checkout failed")
		response.Error[any](c, http.StatusInternalServerError, "checkout failed", nil)
	}
}
