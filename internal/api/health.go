package api

import (
	"net/http"

	"blood_donation/internal/apperr"
	"blood_donation/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RootHandler answers the service greeting
func RootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "Hello Port-Folio Server 3")
	}
}

// HealthHandler pings the database
func HealthHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		if err := db.Ping(c.Request.Context()); err != nil {
			middleware.Fail(c, apperr.Wrap(apperr.UpstreamFailure, "database unreachable", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
