package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"helioskin-backend/database"
	"helioskin-backend/services"
)

func GetProducts(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.ListProducts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func GetProduct(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		product, err := catalog.GetProduct(c.Request.Context(), slug)
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
