// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// CatalogHandler handles product listing endpoints
type CatalogHandler struct {
	catalog *catalog.Catalog
	config  *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
		config:  cfg,
	}
}

// GetProducts handles GET /products with optional filter and sort queries
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	opts := catalog.FilterOptions{
		Category: c.Query("category"),
		SortBy:   c.DefaultQuery("sort", catalog.SortFeatured),
	}

	if v := c.Query("min_price"); v != "" {
		minPrice, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
			return
		}
		opts.MinPrice = minPrice
	}

	if v := c.Query("max_price"); v != "" {
		maxPrice, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
			return
		}
		opts.MaxPrice = maxPrice
	}

	switch opts.SortBy {
	case catalog.SortFeatured, catalog.SortPriceAsc, catalog.SortPriceDesc, catalog.SortName:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort option"})
		return
	}

	products := h.catalog.Filter(opts)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": products,
			"count":    len(products),
		},
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	product, ok := h.catalog.ByID(uint(productID))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetFeatured handles GET /products/featured
func (h *CatalogHandler) GetFeatured(c *gin.Context) {
	products := h.catalog.Featured()

	c.JSON(http.StatusOK, gin.H{
		"message": "Featured products retrieved successfully",
		"data": gin.H{
			"products": products,
			"count":    len(products),
		},
	})
}

// GetCategories handles GET /products/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    h.catalog.Categories(),
	})
}
