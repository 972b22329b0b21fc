package api

import (
	"blood_donation/internal/apperr"     // Error kinds
	"blood_donation/internal/domain"     // Importing domain models
	"blood_donation/internal/middleware" // Identity and failures
	"blood_donation/internal/store"      // Filters
	"blood_donation/internal/utils"      // Cache keys

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// CreateDonationHandler stores a donation request owned by the verified user
func CreateDonationHandler(donations DonationStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, _ := middleware.EmailFrom(c)
		var req domain.CreateDonationRequest
		if !bindJSON(c, &req) {
			return
		}
		res, err := donations.Insert(c.Request.Context(), req.ToDonation(email))
		if err == nil {
			invalidate(rdb, utils.StatsCacheKey)
		}
		created(c, res, err)
	}
}

// ListDonationsHandler returns a page of donation requests. With owner set the list
// is restricted to the :email path parameter.
func ListDonationsHandler(donations DonationStore, owner bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, empty := pageFromQuery(c)
		if empty {
			respond(c, []domain.Donation{}, nil)
			return
		}
		filter := store.DonationFilter{Status: c.Query("status")}
		if owner {
			filter.DonorEmail = c.Param("email")
		}
		list, err := donations.List(c.Request.Context(), filter, page)
		respond(c, list, err)
	}
}

// CountDonationsHandler counts donation requests, optionally by status
func CountDonationsHandler(donations DonationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := donations.Count(c.Request.Context(), store.DonationFilter{Status: c.Query("status")})
		respond(c, domain.CountResult{Count: n}, err)
	}
}

// GetDonationHandler returns one donation request
func GetDonationHandler(donations DonationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		d, err := donations.FindByID(c.Request.Context(), id)
		respond(c, d, err)
	}
}

// PatchDonationHandler merges the allow-listed request fields, creating the donation when the id is unknown
func PatchDonationHandler(donations DonationStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req domain.DonationPatch
		if !bindJSON(c, &req) {
			return
		}
		res, err := donations.Patch(c.Request.Context(), id, req)
		if err == nil && res.UpsertedCount > 0 {
			invalidate(rdb, utils.StatsCacheKey)
		}
		respond(c, res, err)
	}
}

// SetDonationStatusHandler sets the :status path parameter on a donation request
func SetDonationStatusHandler(donations DonationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		status := c.Param("status")
		if status == "" {
			middleware.Fail(c, apperr.New(apperr.BadRequest, "status is required"))
			return
		}
		res, err := donations.SetStatus(c.Request.Context(), id, status)
		respond(c, res, err)
	}
}

// DeleteDonationHandler removes a donation request
func DeleteDonationHandler(donations DonationStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		res, err := donations.Delete(c.Request.Context(), id)
		if err == nil {
			invalidate(rdb, utils.StatsCacheKey)
		}
		respond(c, res, err)
	}
}
