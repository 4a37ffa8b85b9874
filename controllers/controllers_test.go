package controllers

import (
	"github.com/gin-gonic/gin"

	"helioskin-backend/database"
	"helioskin-backend/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the routes the way main does, over the given store.
func newTestRouter(store database.Store) *gin.Engine {
	catalog := services.NewCatalogService(store)
	orders := services.NewOrderService(store)

	r := gin.New()
	r.GET("/", Root())
	r.GET("/schema", GetSchema())
	r.GET("/test", TestDatabase(store))
	r.GET("/products", GetProducts(catalog))
	r.GET("/products/:slug", GetProduct(catalog))
	r.POST("/orders", CreateOrder(orders))
	return r
}
