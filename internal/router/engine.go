package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/minishop/go-api/pkg/store"
)

var Router *gin.Engine

// db is the storage backend selected once at startup.
var db store.Store

func InitEngine() {
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	Router = gin.Default()

	Router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Cache"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func InitializeRoutes(st store.Store) {
	db = st

	api := Router.Group("/api")
	{
		api.GET("/health", HealthCheck)

		products := api.Group("/products")
		{
			products.GET("", GetAllProducts)
			products.POST("", CreateNewProducts)
			products.GET("/:id", GetProductByID)
		}

		cart := api.Group("/cart")
		cart.Use(SessionMiddleware())
		{
			cart.GET("", GetCart)
			cart.POST("", AddToCart)
			cart.PUT("/:id", UpdateCartItem)
			cart.DELETE("/:id", RemoveFromCart)
		}

		checkout := api.Group("/checkout")
		checkout.Use(SessionMiddleware())
		{
			checkout.POST("", Checkout)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", GetAllOrders)
			orders.GET("/summary", GetSalesSummary)
		}
	}
}
