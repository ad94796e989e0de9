package entity

// CartLine is one (product, quantity) entry in the cart. The cart holds at
// most one line per product id and every line has quantity >= 1.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is the effective price of the line's product times its quantity.
func (l CartLine) Subtotal() float64 {
	return l.Product.EffectivePrice() * float64(l.Quantity)
}
