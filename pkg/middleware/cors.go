package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware lets the app and browser tooling call the API from any
// origin. Auth is a bearer token, so no cookies are involved.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Length", "Content-Type", "Authorization", TraceHeader},
		ExposeHeaders:   []string{"Content-Length", TraceHeader},
		MaxAge:          12 * time.Hour,
	})
}
