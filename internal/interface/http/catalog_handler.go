package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dentalcare360/storefront/internal/catalog"
	"github.com/dentalcare360/storefront/pkg/response"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

// ListProducts GET /api/products?category=&q=
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	category := c.Query("category")
	query := c.Query("q")
	var data any
	if category == "" && query == "" {
		data = h.Catalog.All()
	} else {
		data = h.Catalog.Filter(category, query)
	}
	response.Success(c, http.StatusOK, gin.H{
		"products":   data,
		"categories": h.Catalog.Categories(),
	}, "products", nil)
}

// GetProduct GET /api/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid product id", nil)
		return
	}
	p, ok := h.Catalog.ByID(id)
	if !ok {
		response.Error[any](c, http.StatusNotFound, "product not found", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "product", nil)
}
