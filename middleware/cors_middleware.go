package middleware

import (
	"time"

	"finboard/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured frontend origin to call the JSON API. The
// dashboard page itself is served same-origin and never needs this.
func CORS(cfg *config.ConfigManager) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{cfg.GetConfig().FrontendUrl},
		AllowMethods:     []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
