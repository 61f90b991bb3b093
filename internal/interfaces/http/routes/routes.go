// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/session"
)

// SetupRoutes wires all API routes
func SetupRoutes(rg *gin.RouterGroup, cat *catalog.Catalog, sessions *session.Manager, cfg *config.Config) {
	SetupProductRoutes(rg, cat, cfg)
	SetupCartRoutes(rg, sessions, cfg)
	SetupCheckoutRoutes(rg, sessions, cfg)
	SetupOrderRoutes(rg, sessions, cfg)
	SetupWishlistRoutes(rg, cat, sessions, cfg)
}

// SetupProductRoutes sets up catalog related routes
func SetupProductRoutes(rg *gin.RouterGroup, cat *catalog.Catalog, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(cat, cfg)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/featured", catalogHandler.GetFeatured)
		products.GET("/categories", catalogHandler.GetCategories)
		products.GET("/:id", catalogHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, sessions *session.Manager, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(sessions, cfg)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.GET("/count", cartHandler.GetCartCount)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cart.DELETE("", cartHandler.ClearCart)
	}
}

// SetupCheckoutRoutes sets up checkout related routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, sessions *session.Manager, cfg *config.Config) {
	checkoutHandler := handlers.NewCheckoutHandler(sessions, cfg)

	checkout := rg.Group("/checkout")
	{
		checkout.GET("/summary", checkoutHandler.GetSummary)
		checkout.POST("", checkoutHandler.Checkout)
	}
}

// SetupOrderRoutes sets up order history routes
func SetupOrderRoutes(rg *gin.RouterGroup, sessions *session.Manager, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(sessions, cfg)

	orders := rg.Group("/orders")
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:number", orderHandler.GetOrder)
	}
}

// SetupWishlistRoutes sets up wishlist routes
func SetupWishlistRoutes(rg *gin.RouterGroup, cat *catalog.Catalog, sessions *session.Manager, cfg *config.Config) {
	wishlistHandler := handlers.NewWishlistHandler(sessions, cat, cfg)

	wishlist := rg.Group("/wishlist")
	{
		wishlist.GET("", wishlistHandler.GetWishlist)
		wishlist.POST("/:id", wishlistHandler.ToggleWishlist)
		wishlist.DELETE("/:id", wishlistHandler.RemoveFromWishlist)
	}
}
