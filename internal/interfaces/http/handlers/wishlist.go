// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/session"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	sessions *session.Manager
	catalog  *catalog.Catalog
	config   *config.Config
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(sessions *session.Manager, cat *catalog.Catalog, cfg *config.Config) *WishlistHandler {
	return &WishlistHandler{
		sessions: sessions,
		catalog:  cat,
		config:   cfg,
	}
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	sess := resolveSession(c, h.sessions, h.config)

	ids := sess.WishlistIDs()
	products := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := h.catalog.ByID(id); ok {
			products = append(products, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist retrieved successfully",
		"data": gin.H{
			"products": products,
			"count":    len(products),
		},
	})
}

// ToggleWishlist handles POST /wishlist/:id
func (h *WishlistHandler) ToggleWishlist(c *gin.Context) {
	sess := resolveSession(c, h.sessions, h.config)

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	added, err := sess.ToggleWishlist(uint(productID))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Product removed from wishlist"
	if added {
		message = "Product added to wishlist"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data": gin.H{
			"product_id": productID,
			"on_list":    added,
		},
	})
}

// RemoveFromWishlist handles DELETE /wishlist/:id
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	sess := resolveSession(c, h.sessions, h.config)

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	sess.RemoveFromWishlist(uint(productID))

	c.JSON(http.StatusOK, gin.H{
		"message": "Product removed from wishlist",
	})
}
