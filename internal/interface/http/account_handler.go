package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dentalcare360/storefront/internal/application"
	"github.com/dentalcare360/storefront/internal/domain/entity"
	"github.com/dentalcare360/storefront/pkg/response"
	"github.com/dentalcare360/storefront/pkg/validation"
)

type AccountHandler struct {
	Accounts *application.AccountStore
	Logger   *logrus.Logger
}

func NewAccountHandler(accounts *application.AccountStore, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Accounts: accounts, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

type addressRequest struct {
	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	ZipCode      string `json:"zipCode" binding:"required"`
	IsDefault    bool   `json:"isDefault"`
}

// Register POST /api/register
func (h *AccountHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Accounts.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrEmailInUse) {
			response.Error[any](c, http.StatusConflict, "email already in use", nil)
			return
		}
		h.Logger.WithError(err).Error("registration failed")
		response.Error[any](c, http.StatusInternalServerError, "registration failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, u, "account created", nil)
}

// Login POST /api/login
func (h *AccountHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error[any](c, http.StatusInternalServerError, "login failed", nil)
		return
	}
	response.Success(c, http.StatusOK, u, "login successful", nil)
}

// Logout POST /api/logout
func (h *AccountHandler) Logout(c *gin.Context) {
	h.Accounts.Logout(c.Request.Context())
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "logged out", nil)
}

// GetProfile GET /api/profile
func (h *AccountHandler) GetProfile(c *gin.Context) {
	u := h.Accounts.CurrentUser()
	if u == nil {
		response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	response.Success(c, http.StatusOK, u, "profile", nil)
}

// UpdateProfile PUT /api/profile
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Accounts.UpdateProfile(c.Request.Context(), application.ProfileInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		h.writeAccountError(c, err, "failed to update profile")
		return
	}
	response.Success(c, http.StatusOK, u, "profile updated", nil)
}

// AddAddress POST /api/addresses
func (h *AccountHandler) AddAddress(c *gin.Context) {
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	addr, err := h.Accounts.AddAddress(c.Request.Context(), application.AddressInput{
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		IsDefault:    req.IsDefault,
	})
	if err != nil {
		h.writeAccountError(c, err, "failed to add address")
		return
	}
	response.Success(c, http.StatusCreated, addr, "address added", nil)
}

// UpdateAddress PUT /api/addresses/:id
func (h *AccountHandler) UpdateAddress(c *gin.Context) {
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	addr := entity.Address{
		ID:           c.Param("id"),
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		IsDefault:    req.IsDefault,
	}
	if err := h.Accounts.UpdateAddress(c.Request.Context(), addr); err != nil {
		h.writeAccountError(c, err, "failed to update address")
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"updated": true}, "address updated", nil)
}

// RemoveAddress DELETE /api/addresses/:id
func (h *AccountHandler) RemoveAddress(c *gin.Context) {
	if err := h.Accounts.RemoveAddress(c.Request.Context(), c.Param("id")); err != nil {
		h.writeAccountError(c, err, "failed to remove address")
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"removed": true}, "address removed", nil)
}

// SetDefaultAddress POST /api/addresses/:id/default
func (h *AccountHandler) SetDefaultAddress(c *gin.Context) {
	if err := h.Accounts.SetDefaultAddress(c.Request.Context(), c.Param("id")); err != nil {
		h.writeAccountError(c, err, "failed to set default address")
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"default": true}, "default address set", nil)
}

// ListOrders GET /api/orders
func (h *AccountHandler) ListOrders(c *gin.Context) {
	orders, err := h.Accounts.Orders()
	if err != nil {
		h.writeAccountError(c, err, "failed to list orders")
		return
	}
	response.Success(c, http.StatusOK, orders, "orders", nil)
}

// GetOrder GET /api/orders/:id
func (h *AccountHandler) GetOrder(c *gin.Context) {
	order, err := h.Accounts.OrderByID(c.Param("id"))
	if err != nil {
		h.writeAccountError(c, err, "failed to fetch order")
		return
	}
	response.Success(c, http.StatusOK, order, "order", nil)
}

func (h *AccountHandler) writeAccountError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, application.ErrNoSession):
		response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
	case errors.Is(err, application.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "not found", nil)
	default:
		h.Logger.WithError(err).Error(msg)
		response.Error[any](c, http.StatusInternalServerError, msg, nil)
	}
}
