package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dentalcare360/storefront/internal/container"
	handlers "github.com/dentalcare360/storefront/internal/interface/http"
	"github.com/dentalcare360/storefront/internal/interface/middleware"
)

// AccountModule wires account HTTP handlers into routes.
// Public: POST /api/register, POST /api/login
// Session-guarded: logout, profile, addresses, orders
type AccountModule struct {
	Handler *handlers.AccountHandler
}

func NewAccountModule(h *handlers.AccountHandler) *AccountModule {
	return &AccountModule{Handler: h}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	// Public with rate limiting
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath()) // 10 req/min per IP
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())    // 10 req/min per IP

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)

	// Session-guarded
	auth := rg.Group("/")
	auth.Use(middleware.SessionRequired(container.GetAccountStore()))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/profile", m.Handler.GetProfile)
		auth.PUT("/profile", m.Handler.UpdateProfile)

		auth.POST("/addresses", m.Handler.AddAddress)
		auth.PUT("/addresses/:id", m.Handler.UpdateAddress)
		auth.DELETE("/addresses/:id", m.Handler.RemoveAddress)
		auth.POST("/addresses/:id/default", m.Handler.SetDefaultAddress)

		auth.GET("/orders", m.Handler.ListOrders)
		auth.GET("/orders/:id", m.Handler.GetOrder)
	}
}
