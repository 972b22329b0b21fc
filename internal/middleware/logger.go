package middleware

import (
	"net/http" // HTTP status codes
	"time"     // Latency measurement

	"blood_donation/internal/apperr" // Error kinds

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Request ids
	"github.com/sirupsen/logrus" // Structured logging
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID assigns each request an id, reusing the caller's when present
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDHeader, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Logger logs one line per request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		fields := logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"client_ip":  c.ClientIP(),
			"request_id": c.GetString(RequestIDHeader),
		}
		if c.FullPath() == "" {
			fields["path"] = c.Request.URL.Path // Unmatched route
		}
		entry := logrus.WithFields(fields)
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			entry.Error("request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	}
}

// Recovery turns panics into a structured Internal error
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logrus.WithFields(logrus.Fields{
			"panic":      recovered,
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(RequestIDHeader),
		}).Error("handler panicked")
		Fail(c, apperr.New(apperr.Internal, "internal server error"))
	})
}

// Fail aborts the request with the structured error body for err
func Fail(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	entry := logrus.WithFields(logrus.Fields{
		"kind":       kind,
		"path":       c.Request.URL.Path,
		"request_id": c.GetString(RequestIDHeader),
		"error":      err.Error(),
	})
	switch kind {
	case apperr.UpstreamFailure, apperr.Timeout, apperr.Internal:
		entry.Error("request error")
	default:
		entry.Debug("request error")
	}
	c.AbortWithStatusJSON(kind.Status(), apperr.BodyOf(err))
}
