package router

import (
	"github.com/dentalcare360/storefront/internal/container"
	handlers "github.com/dentalcare360/storefront/internal/interface/http"
	"github.com/dentalcare360/storefront/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	logger := container.GetLogger()

	accountHandler := handlers.NewAccountHandler(container.GetAccountStore(), logger)
	catalogHandler := handlers.NewCatalogHandler(container.GetCatalog())
	cartHandler := handlers.NewCartHandler(container.GetCartStore(), container.GetCatalog(), logger)
	checkoutHandler := handlers.NewCheckoutHandler(container.GetCheckout(), container.GetCartStore(), logger)

	r.Add(modules.NewAccountModule(accountHandler))
	r.Add(modules.NewStoreModule(catalogHandler, cartHandler, checkoutHandler))
}
