package api

import (
	"context" // Context for cache calls
	"time"    // Cache lifetime

	"blood_donation/internal/domain"     // Importing domain models
	"blood_donation/internal/middleware" // Identity
	"blood_donation/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// CreateBlogHandler stores an unpublished post authored by the verified admin
func CreateBlogHandler(blogs BlogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, _ := middleware.EmailFrom(c)
		var req domain.CreateBlogRequest
		if !bindJSON(c, &req) {
			return
		}
		res, err := blogs.Insert(c.Request.Context(), req.ToBlog(email))
		created(c, res, err)
	}
}

// ListBlogsHandler returns a page of posts, optionally filtered by status
func ListBlogsHandler(blogs BlogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, empty := pageFromQuery(c)
		if empty {
			respond(c, []domain.Blog{}, nil)
			return
		}
		list, err := blogs.List(c.Request.Context(), c.Query("status"), page)
		respond(c, list, err)
	}
}

// PublicBlogsHandler returns every published post, served from cache when possible
func PublicBlogsHandler(blogs BlogStore, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached []domain.Blog
		if found, err := utils.GetCache(ctx, rdb, utils.PublicBlogCacheKey, &cached); err == nil && found {
			respond(c, cached, nil)
			return
		}
		list, err := blogs.List(ctx, domain.BlogPublished, pageAll)
		if err != nil {
			respond(c, nil, err)
			return
		}
		if err := utils.SetCache(context.Background(), rdb, utils.PublicBlogCacheKey, list, ttl); err != nil {
			logrus.WithError(err).Warn("caching public blogs failed")
		}
		respond(c, list, nil)
	}
}

// GetBlogHandler returns one post
func GetBlogHandler(blogs BlogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		b, err := blogs.FindByID(c.Request.Context(), id)
		respond(c, b, err)
	}
}

// PatchBlogHandler merges the allow-listed post fields
func PatchBlogHandler(blogs BlogStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req domain.BlogPatch
		if !bindJSON(c, &req) {
			return
		}
		res, err := blogs.Patch(c.Request.Context(), id, req)
		if err == nil {
			invalidate(rdb, utils.PublicBlogCacheKey)
		}
		respond(c, res, err)
	}
}

// SetBlogStatusHandler publishes or unpublishes a post
func SetBlogStatusHandler(blogs BlogStore, rdb *redis.Client, status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		res, err := blogs.SetStatus(c.Request.Context(), id, status)
		if err == nil {
			invalidate(rdb, utils.PublicBlogCacheKey)
		}
		respond(c, res, err)
	}
}

// DeleteBlogHandler removes a post
func DeleteBlogHandler(blogs BlogStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		res, err := blogs.Delete(c.Request.Context(), id)
		if err == nil {
			invalidate(rdb, utils.PublicBlogCacheKey)
		}
		respond(c, res, err)
	}
}
