package api

import (
	"context" // Context for cache writes
	"time"    // Cache lifetime

	"blood_donation/internal/domain" // Importing domain models
	"blood_donation/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging
)

// StatsHandler returns the dashboard aggregate, cached for ttl
func StatsHandler(stats StatsSource, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached domain.Stats
		// If cached data found, return it
		if found, err := utils.GetCache(ctx, rdb, utils.StatsCacheKey, &cached); err == nil && found {
			respond(c, cached, nil)
			return
		}
		s, err := stats.Stats(ctx)
		if err != nil {
			respond(c, nil, err)
			return
		}
		// Cache the response for future requests
		if err := utils.SetCache(context.Background(), rdb, utils.StatsCacheKey, s, ttl); err != nil {
			logrus.WithError(err).Warn("caching stats failed")
		}
		respond(c, s, nil)
	}
}
