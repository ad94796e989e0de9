package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dentalcare360/storefront/internal/application"
	"github.com/dentalcare360/storefront/internal/catalog"
	"github.com/dentalcare360/storefront/pkg/response"
	"github.com/dentalcare360/storefront/pkg/validation"
)

type CartHandler struct {
	Cart    *application.CartStore
	Catalog *catalog.Catalog
	Logger  *logrus.Logger
}

func NewCartHandler(cart *application.CartStore, cat *catalog.Catalog, logger *logrus.Logger) *CartHandler {
	return &CartHandler{Cart: cart, Catalog: cat, Logger: logger}
}

type addItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity" binding:"omitempty,gte=1"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) cartPayload() gin.H {
	return gin.H{
		"items":     h.Cart.Lines(),
		"itemCount": h.Cart.ItemCount(),
		"total":     h.Cart.Total(),
		"isOpen":    h.Cart.IsOpen(),
	}
}

// GetCart GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	response.Success(c, http.StatusOK, h.cartPayload(), "cart", nil)
}

// AddItem POST /api/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	product, ok := h.Catalog.ByID(req.ProductID)
	if !ok {
		response.Error[any](c, http.StatusNotFound, "product not found", nil)
		return
	}
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}
	h.Cart.AddItem(c.Request.Context(), product, qty)
	response.Success(c, http.StatusOK, h.cartPayload(), "item added", nil)
}

// UpdateItem PUT /api/cart/items/:id
// A quantity of zero or less removes the line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid product id", nil)
		return
	}
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	h.Cart.UpdateQuantity(c.Request.Context(), productID, req.Quantity)
	response.Success(c, http.StatusOK, h.cartPayload(), "cart updated", nil)
}

// RemoveItem DELETE /api/cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid product id", nil)
		return
	}
	h.Cart.RemoveItem(c.Request.Context(), productID)
	response.Success(c, http.StatusOK, h.cartPayload(), "item removed", nil)
}

// Open POST /api/cart/open
func (h *CartHandler) Open(c *gin.Context) {
	h.Cart.Open()
	response.Success(c, http.StatusOK, h.cartPayload(), "cart opened", nil)
}

// Close POST /api/cart/close
func (h *CartHandler) Close(c *gin.Context) {
	h.Cart.Close()
	response.Success(c, http.StatusOK, h.cartPayload(), "cart closed", nil)
}
