package entity

// Product is immutable reference data supplied by the catalog.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	DiscountPrice float64 `json:"discountPrice,omitempty"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	IsNew         bool    `json:"isNew,omitempty"`
	IsBestSeller  bool    `json:"isBestSeller,omitempty"`
}

// EffectivePrice is the price a buyer actually pays: the discount price when
// one is set, the list price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice > 0 {
		return p.DiscountPrice
	}
	return p.Price
}
