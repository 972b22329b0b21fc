package api

import (
	"context"  // Context for cache calls
	"math"     // Skip overflow bound
	"net/http" // HTTP status codes
	"strconv"  // Query parsing

	"blood_donation/internal/apperr"     // Error kinds
	"blood_donation/internal/middleware" // Structured failures
	"blood_donation/internal/store"      // Paging and ids
	"blood_donation/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"                   // Gin web framework
	"github.com/redis/go-redis/v9"               // Redis client
	"github.com/sirupsen/logrus"                 // Logging
	"go.mongodb.org/mongo-driver/bson/primitive" // ObjectID type
)

// pageAll selects every matching document
var pageAll = store.Page{}

// bindJSON decodes the request body into req, failing the request on error
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.Fail(c, apperr.Wrap(apperr.BadRequest, "invalid request body: "+err.Error(), err))
		return false
	}
	return true
}

// pathID parses the :id path parameter
func pathID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

// pageFromQuery reads page and size. Without size every match is returned.
// Non-numeric and negative values count as 0. empty reports a window that
// cannot hold any document: a zero size or a skip past math.MaxInt64.
func pageFromQuery(c *gin.Context) (p store.Page, empty bool) {
	sizeStr, ok := c.GetQuery("size")
	if !ok {
		return store.Page{}, false
	}
	size := nonNegative(sizeStr)
	if size == 0 {
		return store.Page{}, true
	}
	page := nonNegative(c.Query("page"))
	if page > math.MaxInt64/size {
		return store.Page{}, true
	}
	return store.Page{Skip: page * size, Limit: size}, false
}

func nonNegative(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// respond writes v or the structured error for err
func respond(c *gin.Context, v any, err error) {
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// created writes an insert result with 201
func created(c *gin.Context, v any, err error) {
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// invalidate drops cached entries after a write
func invalidate(rdb *redis.Client, keys ...string) {
	if err := utils.DeleteCache(context.Background(), rdb, keys...); err != nil {
		logrus.WithFields(logrus.Fields{"keys": keys, "error": err.Error()}).Warn("cache invalidation failed")
	}
}
