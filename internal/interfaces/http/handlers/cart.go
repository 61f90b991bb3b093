// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
	"github.com/your-org/storefront-backend/internal/session"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	sessions *session.Manager
	config   *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(sessions *session.Manager, cfg *config.Config) *CartHandler {
	return &CartHandler{
		sessions: sessions,
		config:   cfg,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest represents update cart item request
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=0"`
}

// CartResponse represents a shopping cart with items and summary
type CartResponse struct {
	SessionID string        `json:"session_id"`
	Items     []cart.Line   `json:"items"`
	Totals    pricing.Quote `json:"totals"`
}

func buildCartResponse(sess *session.Session) (CartResponse, error) {
	quote, err := sess.Quote()
	if err != nil {
		return CartResponse{}, err
	}
	return CartResponse{
		SessionID: sess.ID,
		Items:     sess.Lines(),
		Totals:    quote,
	}, nil
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sess := resolveSession(c, h.sessions, h.config)

	cartResponse, err := buildCartResponse(sess)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    cartResponse,
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	sess := resolveSession(c, h.sessions, h.config)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if _, err := sess.AddItem(req.ProductID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	cartResponse, err := buildCartResponse(sess)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    cartResponse,
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	sess := resolveSession(c, h.sessions, h.config)

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := sess.UpdateItem(uint(productID), *req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	cartResponse, err := buildCartResponse(sess)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    cartResponse,
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	sess := resolveSession(c, h.sessions, h.config)

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	sess.RemoveItem(uint(productID))

	cartResponse, err := buildCartResponse(sess)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    cartResponse,
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sess := resolveSession(c, h.sessions, h.config)
	sess.ClearCart()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	sess := resolveSession(c, h.sessions, h.config)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": sess.ItemCount(),
		},
	})
}
