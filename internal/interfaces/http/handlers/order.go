// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/session"
)

// OrderHandler handles order history endpoints
type OrderHandler struct {
	sessions *session.Manager
	config   *config.Config
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(sessions *session.Manager, cfg *config.Config) *OrderHandler {
	return &OrderHandler{
		sessions: sessions,
		config:   cfg,
	}
}

// ListOrders handles GET /orders with an optional limit query
func (h *OrderHandler) ListOrders(c *gin.Context) {
	sess := resolveSession(c, h.sessions, h.config)

	limit := 0
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	orders := sess.History(limit)

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data": gin.H{
			"orders": orders,
			"count":  len(orders),
			"total":  sess.OrderCount(),
		},
	})
}

// GetOrder handles GET /orders/:number
func (h *OrderHandler) GetOrder(c *gin.Context) {
	sess := resolveSession(c, h.sessions, h.config)

	o, err := sess.OrderByNumber(c.Param("number"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    o,
	})
}
