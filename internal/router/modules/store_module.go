package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/dentalcare360/storefront/internal/interface/http"
)

// StoreModule wires catalog, cart and checkout handlers into routes. Cart and
// checkout are usable in guest mode; only the account routes need a session.
type StoreModule struct {
	Catalog  *handlers.CatalogHandler
	Cart     *handlers.CartHandler
	Checkout *handlers.CheckoutHandler
}

func NewStoreModule(cat *handlers.CatalogHandler, cart *handlers.CartHandler, co *handlers.CheckoutHandler) *StoreModule {
	return &StoreModule{Catalog: cat, Cart: cart, Checkout: co}
}

func (m *StoreModule) Register(rg *gin.RouterGroup) {
	rg.GET("/products", m.Catalog.ListProducts)
	rg.GET("/products/:id", m.Catalog.GetProduct)

	rg.GET("/cart", m.Cart.GetCart)
	rg.POST("/cart/items", m.Cart.AddItem)
	rg.PUT("/cart/items/:id", m.Cart.UpdateItem)
	rg.DELETE("/cart/items/:id", m.Cart.RemoveItem)
	rg.POST("/cart/open", m.Cart.Open)
	rg.POST("/cart/close", m.Cart.Close)

	rg.GET("/checkout", m.Checkout.GetState)
	rg.POST("/checkout/advance", m.Checkout.Advance)
	rg.POST("/checkout/back", m.Checkout.Back)
	rg.POST("/checkout/reset", m.Checkout.Reset)
	rg.POST("/checkout/order", m.Checkout.PlaceOrder)
}
