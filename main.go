package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"helioskin-backend/controllers"
	"helioskin-backend/database"
	"helioskin-backend/middleware"
	"helioskin-backend/services"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment variables")
	}

	// A failed connection leaves the store degraded rather than aborting:
	// /test must keep answering while data routes return 500.
	store := database.Connect()

	catalog := services.NewCatalogService(store)
	orders := services.NewOrderService(store)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))
	r.Use(middleware.RequestID())
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/", controllers.Root())
	r.GET("/schema", controllers.GetSchema())
	r.GET("/test", controllers.TestDatabase(store))

	r.GET("/products", controllers.GetProducts(catalog))
	r.GET("/products/:slug", controllers.GetProduct(catalog))
	r.POST("/orders", controllers.CreateOrder(orders))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Info().Str("port", port).Msg("starting server")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
