// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/session"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	sessions *session.Manager
	config   *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(sessions *session.Manager, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		sessions: sessions,
		config:   cfg,
	}
}

// GetSummary handles GET /checkout/summary
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	sess := resolveSession(c, h.sessions, h.config)

	cartResponse, err := buildCartResponse(sess)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout summary retrieved successfully",
		"data":    cartResponse,
	})
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sess := resolveSession(c, h.sessions, h.config)

	o, err := sess.Checkout()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    o,
	})
}
