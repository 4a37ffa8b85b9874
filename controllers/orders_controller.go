package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"helioskin-backend/dto"
	"helioskin-backend/services"
)

func CreateOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateOrderDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		receipt, err := orders.CreateOrder(c.Request.Context(), body.ToOrder())
		if err != nil {
			var invalid *services.InvalidProductError
			if errors.As(err, &invalid) {
				c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
			return
		}

		c.JSON(http.StatusOK, receipt)
	}
}
