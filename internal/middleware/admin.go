package middleware

import (
	"context" // Context for lookups

	"blood_donation/internal/apperr" // Error kinds
	"blood_donation/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
)

// RoleLookup finds the stored user behind a verified email
type RoleLookup interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// VerifyAdmin checks the user's role from the database on each request.
// It must run after VerifyToken.
func VerifyAdmin(users RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := EmailFrom(c) // Get identity from context
		if !ok {
			Fail(c, apperr.New(apperr.Unauthenticated, "missing verified identity"))
			return
		}
		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			if apperr.KindOf(err) == apperr.NotFound {
				Fail(c, apperr.New(apperr.Forbidden, "admin access required"))
				return
			}
			Fail(c, err) // Lookup failure keeps its own kind
			return
		}
		// Check if user role is admin
		if !user.IsAdmin() {
			Fail(c, apperr.New(apperr.Forbidden, "admin access required"))
			return
		}
		c.Next()
	}
}

// SelfOnly rejects requests whose verified email differs from the named path parameter.
// It must run after VerifyToken.
func SelfOnly(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := EmailFrom(c)
		if !ok {
			Fail(c, apperr.New(apperr.Unauthenticated, "missing verified identity"))
			return
		}
		if c.Param(param) != email {
			Fail(c, apperr.New(apperr.Forbidden, "forbidden access"))
			return
		}
		c.Next()
	}
}
