package api

import (
	"blood_donation/internal/apperr"     // Error kinds
	"blood_donation/internal/domain"     // Importing domain models
	"blood_donation/internal/middleware" // Structured failures
	"blood_donation/internal/utils"      // Cache keys

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// CreateUserHandler stores a new user from the allow-listed body
func CreateUserHandler(users UserStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.CreateUserRequest // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		res, err := users.Insert(c.Request.Context(), req.ToUser())
		if err == nil {
			invalidate(rdb, utils.StatsCacheKey) // User count changed
		}
		created(c, res, err)
	}
}

// ListUsersHandler returns every user
func ListUsersHandler(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.List(c.Request.Context(), "", pageAll)
		respond(c, list, err)
	}
}

// GetUserByEmailHandler looks a user up by the email query parameter
func GetUserByEmailHandler(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			middleware.Fail(c, apperr.New(apperr.BadRequest, "email query parameter is required"))
			return
		}
		user, err := users.FindByEmail(c.Request.Context(), email)
		respond(c, user, err)
	}
}

// GetUserHandler looks a user up by id
func GetUserHandler(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		user, err := users.FindByID(c.Request.Context(), id)
		respond(c, user, err)
	}
}

// PatchUserHandler merges the allow-listed profile fields, creating the user when the id is unknown
func PatchUserHandler(users UserStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req domain.UserPatch
		if !bindJSON(c, &req) {
			return
		}
		res, err := users.Patch(c.Request.Context(), id, req)
		if err == nil && res.UpsertedCount > 0 {
			invalidate(rdb, utils.StatsCacheKey)
		}
		respond(c, res, err)
	}
}

// ListUsersPageHandler returns a page of users, optionally filtered by status
func ListUsersPageHandler(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, empty := pageFromQuery(c)
		if empty {
			respond(c, []domain.User{}, nil)
			return
		}
		list, err := users.List(c.Request.Context(), c.Query("status"), page)
		respond(c, list, err)
	}
}

// MakeAdminHandler grants the admin role
func MakeAdminHandler(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		res, err := users.SetRole(c.Request.Context(), id, domain.RoleAdmin)
		respond(c, res, err)
	}
}

// SetUserStatusHandler sets a fixed status on a user
func SetUserStatusHandler(users UserStore, status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		res, err := users.SetStatus(c.Request.Context(), id, status)
		respond(c, res, err)
	}
}

// CheckAdminHandler reports whether the verified user holds the admin role
func CheckAdminHandler(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.FindByEmail(c.Request.Context(), c.Param("email"))
		if err != nil && apperr.KindOf(err) != apperr.NotFound {
			middleware.Fail(c, err)
			return
		}
		respond(c, domain.AdminCheck{Admin: err == nil && user.IsAdmin()}, nil)
	}
}
