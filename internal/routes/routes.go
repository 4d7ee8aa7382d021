package routes

import (
	"net/http"
	"os"

	"github.com/freshmart-dev/freshmart-golang/internal/handlers"
	"github.com/freshmart-dev/freshmart-golang/internal/middleware"
	"github.com/freshmart-dev/freshmart-golang/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// CORSMiddleware allows the configured frontend origin to call us.
func CORSMiddleware() gin.HandlerFunc {
	origin := os.Getenv("FRONTEND_URL")
	if origin == "" {
		origin = "http://localhost:5173"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// registerValidators installs the field-format rules on gin's binding
// engine so the input struct tags in handlers resolve.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("person_name", models.ValidatePersonName)
		v.RegisterValidation("street_address", models.ValidateStreetAddress)
		v.RegisterValidation("lk_mobile", models.ValidateMobile)
		v.RegisterValidation("vehicle_id", models.ValidateVehicleID)
		v.RegisterValidation("nic", models.ValidateNIC)
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	registerValidators()

	router := gin.Default()
	router.Use(CORSMiddleware())

	router.Static("/uploads", "./uploads")

	api := router.Group("/api")
	{
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth (Public) ---
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.GET("/auth/google", h.GoogleLogin)
		api.GET("/auth/google/callback", h.GoogleCallback)
		api.GET("/auth/logout", h.Logout)

		// --- Storefront (Public) ---
		api.GET("/items", h.GetItems)
		api.GET("/items/:id", h.GetItemByID)
		api.GET("/newsfeeds", h.GetNewsFeeds)
		api.GET("/newsfeeds/:id", h.GetNewsFeedByID)

		// --- Customer Routes (Login Required) ---
		authed := api.Group("/")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/auth/profile", h.GetProfile)

			authed.POST("/place-order", h.PlaceOrder)
			authed.PATCH("/update-inventory/:id", h.UpdateInventory)
			authed.GET("/orders/user", h.GetMyOrders)

			authed.POST("/feedback", h.CreateFeedback)
			authed.GET("/feedback", h.GetMyFeedback)
			authed.DELETE("/feedback/:id", h.DeleteFeedback)
		}

		// --- Admin Routes ---
		admin := api.Group("/")
		admin.Use(middleware.AuthMiddleware())
		admin.Use(middleware.AdminMiddleware(h.DB))
		{
			admin.POST("/items", h.CreateItem)
			admin.PUT("/items/:id", h.UpdateItem)
			admin.DELETE("/items/:id", h.DeleteItem)

			admin.POST("/drivers", h.CreateDriver)
			admin.GET("/drivers", h.GetDrivers)
			admin.GET("/drivers/:id", h.GetDriverByID)
			admin.PUT("/drivers/:id", h.UpdateDriver)
			admin.DELETE("/drivers/:id", h.DeleteDriver)

			admin.POST("/suppliers", h.CreateSupplier)
			admin.GET("/suppliers", h.GetSuppliers)
			admin.GET("/suppliers/:id", h.GetSupplierByID)
			admin.PUT("/suppliers/:id", h.UpdateSupplier)
			admin.DELETE("/suppliers/:id", h.DeleteSupplier)

			admin.POST("/newsfeeds", h.CreateNewsFeed)
			admin.PUT("/newsfeeds/:id", h.UpdateNewsFeed)
			admin.DELETE("/newsfeeds/:id", h.DeleteNewsFeed)

			admin.GET("/admin/customers", h.GetAllCustomers)
			admin.GET("/admin/orders", h.GetAllOrders)
			admin.GET("/admin/feedback", h.GetAllFeedback)
			admin.PATCH("/admin/feedback/:id/reply", h.ReplyFeedback)

			admin.POST("/admin/upload", h.UploadFile)
			admin.POST("/admin/ai/suggest-promo", h.SuggestPromo)
		}
	}

	return router
}
