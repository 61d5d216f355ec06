package routes

import (
	"net/http"

	"recolecta-api/guard"
	"recolecta-api/handlers"
	"recolecta-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Recolecta Marketplace API"})
		})

		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Catalog (PUBLISHED products only, no auth needed)
		public.GET("/products", handlers.ListCatalog)
		public.GET("/products/:id", handlers.GetProduct)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetLifecycleInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", middleware.Permit(guard.OpProfile), handlers.GetProfile)

		// Collector: listing lifecycle and provenance
		auth.POST("/products", middleware.Permit(guard.OpCreateProduct), handlers.CreateProduct)
		auth.GET("/recolector/products", middleware.Permit(guard.OpListOwned), handlers.ListOwnProducts)
		auth.POST("/products/:id/traceability", middleware.Permit(guard.OpTraceability), handlers.UpsertTraceability)
		auth.POST("/products/:id/publish", middleware.Permit(guard.OpPublish), handlers.PublishProduct)

		// Admin review; patch is shared between admin and owner
		auth.POST("/products/:id/approve", middleware.Permit(guard.OpApprove), handlers.ApproveProduct)
		auth.PATCH("/products/:id", middleware.Permit(guard.OpUpdateProduct), handlers.UpdateProduct)

		// Buyer: order placement
		auth.POST("/orders", middleware.Permit(guard.OpPlaceOrder), handlers.PlaceOrder)
		auth.GET("/orders", middleware.Permit(guard.OpListOwnOrders), handlers.ListOwnOrders)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired())
	{
		admin.GET("/products", middleware.Permit(guard.OpAdminProducts), handlers.AdminListProducts)
		admin.GET("/orders", middleware.Permit(guard.OpAdminOrders), handlers.AdminListOrders)
		admin.GET("/users", middleware.Permit(guard.OpAdminUsers), handlers.AdminListUsers)
	}
}
