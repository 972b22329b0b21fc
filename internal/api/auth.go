package api

import (
	"blood_donation/internal/apperr"     // Error kinds
	"blood_donation/internal/domain"     // Request and response types
	"blood_donation/internal/middleware" // Structured failures
	"blood_donation/internal/utils"      // JWT utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging
)

// IssueTokenHandler signs a one-day bearer credential for the posted email
func IssueTokenHandler(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.TokenRequest // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		token, err := utils.GenerateJWT(req.Email, secret) // Generate JWT token
		if err != nil {
			middleware.Fail(c, apperr.Wrap(apperr.Internal, "failed to generate token", err))
			return
		}
		logrus.WithField("email", req.Email).Debug("token issued")
		respond(c, domain.TokenResponse{Token: token}, nil)
	}
}
