package middleware

import (
	"strings" // String manipulation

	"blood_donation/internal/apperr" // Error kinds
	"blood_donation/internal/utils"  // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// Context keys set by VerifyToken
const (
	ClaimsKey = "claims" // *utils.Claims
	EmailKey  = "email"  // Verified email
)

// VerifyToken validates the bearer credential and stores its claims in the context
func VerifyToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization")) // Get Authorization header
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		// Check if the Authorization header is present and carries a token
		if tokenStr == "" {
			Fail(c, apperr.New(apperr.Unauthenticated, "missing authorization token"))
			return
		}
		claims, err := utils.ParseJWT(tokenStr, secret) // Parse the JWT token
		if err != nil {
			Fail(c, apperr.Wrap(apperr.Unauthenticated, "invalid or expired token", err))
			return
		}
		c.Set(ClaimsKey, claims)      // Store claims in context
		c.Set(EmailKey, claims.Email) // Store identity in context
		c.Next()                      // Proceed to the next handler
	}
}

// EmailFrom returns the identity stored by VerifyToken
func EmailFrom(c *gin.Context) (string, bool) {
	email := c.GetString(EmailKey)
	return email, email != ""
}
