// internal/interfaces/http/handlers/session.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
	"github.com/your-org/storefront-backend/internal/session"
)

// resolveSession gets the shopper's session from the session cookie,
// minting a new cookie and session when none exists yet.
func resolveSession(c *gin.Context, sessions *session.Manager, cfg *config.Config) *session.Session {
	sessionID, err := c.Cookie(cfg.Session.CookieName)
	if err != nil || sessionID == "" {
		sessionID = sessions.NewID()
		c.SetCookie(cfg.Session.CookieName, sessionID, int(cfg.Session.TTL.Seconds()), "/", "", false, true)
	}

	return sessions.GetOrCreate(sessionID)
}

// respondError maps domain errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, catalog.ErrUnknownProduct), errors.Is(err, cart.ErrLineNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, cart.ErrOutOfStock), errors.Is(err, order.ErrEmptyCart):
		status = http.StatusConflict
	case errors.Is(err, pricing.ErrInvalidConfiguration):
		status = http.StatusInternalServerError
	}

	c.JSON(status, gin.H{
		"error": err.Error(),
	})
}
