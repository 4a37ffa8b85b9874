package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"helioskin-backend/database"
	"helioskin-backend/utils"
)

func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Helioskin backend running"})
	}
}

func GetSchema() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"collections": database.Collections()})
	}
}

// TestDatabase reports backend and store health. It always answers 200; every
// store failure is folded into a descriptive status string, with raw errors
// truncated so they cannot leak at full length.
func TestDatabase(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"database_url":      nil,
			"database_name":     nil,
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		if store.Connected() {
			response["database"] = "✅ Connected & Working"
			response["connection_status"] = "Connected"
			if os.Getenv("DATABASE_URL") != "" {
				response["database_url"] = "✅ Set"
			} else {
				response["database_url"] = "❌ Not Set"
			}
			response["database_name"] = store.Name()

			names, err := store.ListCollectionNames(c.Request.Context())
			if err != nil {
				response["database"] = "⚠️  Connected but Error: " + utils.Truncate(err.Error(), 50)
			} else {
				if len(names) > 10 {
					names = names[:10]
				}
				response["collections"] = names
			}
		}

		c.JSON(http.StatusOK, response)
	}
}
