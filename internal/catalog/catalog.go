package catalog

import (
	"strings"

	"github.com/dentalcare360/storefront/internal/domain/entity"
)

// Catalog serves immutable product reference data. Carts and orders read
// products from here and never mutate them.
type Catalog struct {
	products []entity.Product
}

func New(products []entity.Product) *Catalog {
	cp := make([]entity.Product, len(products))
	copy(cp, products)
	return &Catalog{products: cp}
}

// Default returns the catalog preloaded with the store's product line.
func Default() *Catalog {
	return New(defaultProducts)
}

// All returns every product in catalog order.
func (c *Catalog) All() []entity.Product {
	out := make([]entity.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID returns the product with the given id, or false.
func (c *Catalog) ByID(id int) (entity.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Filter returns products matching the category (empty matches all) and a
// case-insensitive text query against name and description.
func (c *Catalog) Filter(category, query string) []entity.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []entity.Product
	for _, p := range c.products {
		if category != "" && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}
