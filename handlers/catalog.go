package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"primerentals/catalog"
)

// CatalogHandler serves read-only views of the equipment catalog so the
// agent can discover what can be rented.
type CatalogHandler struct {
	Catalog  *catalog.Catalog
	Currency string
}

func NewCatalogHandler(cat *catalog.Catalog, currency string) *CatalogHandler {
	return &CatalogHandler{Catalog: cat, Currency: currency}
}

// ListCatalog handles GET /tools/catalog.
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":    h.Catalog.Entries(),
		"count":    h.Catalog.Len(),
		"currency": h.Currency,
	})
}
