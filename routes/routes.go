package routes

import (
	"github.com/gin-gonic/gin"

	"laundry-service-api/handlers"
	"laundry-service-api/middleware"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Order tracking by reference + service catalog (no auth needed)
		public.GET("/orders/:number", handlers.TrackOrder)
		public.GET("/pricing", handlers.GetPricing)

		// Lifecycle info (great for docs/Postman)
		public.GET("/lifecycle", handlers.GetLifecycleInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.POST("/orders", handlers.CreateOrder)
		auth.GET("/orders", handlers.GetMyOrders)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/stats", handlers.AdminStats)
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.PUT("/orders/:id/status", handlers.AdminUpdateOrderStatus)
		admin.PUT("/orders/:id/status/force", handlers.AdminForceOrderStatus)
		admin.GET("/users", handlers.AdminGetAllUsers)
	}
}
