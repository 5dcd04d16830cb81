// Package server exposes the HTTP health surface next to the bot
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// New builds the health router
func New() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "Bot ishlamoqda!",
			"service": "marketbot",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	return router
}
