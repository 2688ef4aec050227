package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartdelivery/smartdelivery-golang/internal/handlers"
)

// CORSMiddleware lets the dashboard frontend talk to the API from another
// origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupRouter builds the gin engine with every API route attached.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong!"})
	})

	api := router.Group("/api")
	{
		// --- Auth (Public) ---
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.Register)
			authGroup.POST("/login", h.Login)
			authGroup.POST("/forgot-password", h.ForgotPassword)
			authGroup.POST("/reset-password", h.ResetPassword)
		}

		// --- Admin Dashboard & Analytics ---
		admin := api.Group("/admin")
		{
			admin.GET("/stats", h.GetStats)
			admin.GET("/analytics", h.GetAnalytics)
			admin.GET("/analytics/driver", h.GetDriverAnalytics)
			admin.GET("/driver-report", h.GetDriverReport)

			// Driver management
			admin.GET("/drivers", h.GetAllDrivers)
			admin.GET("/driver-location", h.GetDriverLocation)
			admin.POST("/drivers/create", h.CreateDriver)
			admin.POST("/drivers/update-status", h.UpdateDriverStatus)
			admin.DELETE("/drivers/reset", h.ResetDrivers)

			// Order management
			admin.GET("/orders", h.GetAllOrders)
			admin.POST("/orders/create", h.CreateOrder)
			admin.POST("/assign", h.AssignDriver)

			admin.GET("/system/reset-all", h.ResetSystem)
		}

		// --- Driver App ---
		driver := api.Group("/driver")
		{
			driver.GET("/my-orders", h.GetMyOrders)
			driver.GET("/history", h.GetHistory)
			driver.POST("/accept", h.AcceptOrder)
			driver.POST("/reject", h.RejectOrder)
			driver.POST("/complete", h.CompleteOrder)
			driver.POST("/update-status", h.UpdateOrderStatus)
			driver.POST("/update-location", h.UpdateLocation)
		}

		// --- Dashboard Listings ---
		api.GET("/orders", h.ListOrders)
		api.GET("/drivers", h.ListDrivers)
		api.GET("/users", h.ListUsers)
	}

	return router
}
