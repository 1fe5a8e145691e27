package routes

import (
	"sweetshop-api/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes binds the sweet shop API and the static frontend.
func RegisterRoutes(router *gin.Engine, sweets *controllers.SweetController) {
	api := router.Group("/api")
	{
		api.GET("/sweets", sweets.ListSweets)
		api.GET("/sweets/search", sweets.SearchSweets)
		api.GET("/sweets/:id", sweets.GetSweetByID)
		api.POST("/sweets", sweets.CreateSweet)
		api.PUT("/sweets/:id", sweets.UpdateSweet)
		api.DELETE("/sweets/:id", sweets.DeleteSweet)
		api.POST("/sweets/:id/purchase", sweets.PurchaseSweet)
		api.POST("/sweets/:id/restock", sweets.RestockSweet)
	}

	// Browser client.
	router.StaticFile("/", "./public/index.html")
	router.StaticFile("/script.js", "./public/script.js")
	router.StaticFile("/styles.css", "./public/styles.css")
}
