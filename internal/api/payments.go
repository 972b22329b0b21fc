package api

import (
	"blood_donation/internal/domain"     // Importing domain models
	"blood_donation/internal/middleware" // Identity and failures
	"blood_donation/internal/utils"      // Cache keys

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging
)

// CreatePaymentIntentHandler returns a processor client secret for the posted price
func CreatePaymentIntentHandler(intents IntentCreator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.PaymentIntentRequest
		if !bindJSON(c, &req) {
			return
		}
		secret, err := intents.CreateIntent(c.Request.Context(), req.Price)
		respond(c, domain.PaymentIntentResponse{ClientSecret: secret}, err)
	}
}

// StageAmountHandler stores a pending amount for the verified user
func StageAmountHandler(payments PaymentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, _ := middleware.EmailFrom(c)
		var req domain.AmountRequest
		if !bindJSON(c, &req) {
			return
		}
		res, err := payments.StagePending(c.Request.Context(), domain.AmountPending{Email: email, Price: req.Price})
		created(c, res, err)
	}
}

// ListPendingHandler returns the staged amounts of the :email user
func ListPendingHandler(payments PaymentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := payments.ListPending(c.Request.Context(), c.Param("email"))
		respond(c, list, err)
	}
}

// RecordPaymentHandler stores a finalized payment, then clears the payer's staged amounts.
// The two writes are independent; a failed clear leaves the payment recorded.
func RecordPaymentHandler(payments PaymentStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, _ := middleware.EmailFrom(c)
		var req domain.PaymentRequest
		if !bindJSON(c, &req) {
			return
		}
		ctx := c.Request.Context()
		inserted, err := payments.Record(ctx, domain.AmountDone{
			Email:         email,
			Price:         req.Price,
			TransactionID: req.TransactionID,
		})
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		invalidate(rdb, utils.StatsCacheKey) // Revenue changed
		cleared, err := payments.ClearPending(ctx, email)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"email":      email,
				"payment_id": inserted.InsertedID,
				"error":      err.Error(),
			}).Error("payment recorded but pending amounts not cleared")
			middleware.Fail(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"email":   email,
			"price":   req.Price,
			"cleared": cleared.DeletedCount,
		}).Info("payment recorded")
		created(c, domain.PaymentReceipt{Payment: inserted, Cleared: cleared}, nil)
	}
}

// ListPaymentsHandler returns the finalized payments of the :email user
func ListPaymentsHandler(payments PaymentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := payments.ListDone(c.Request.Context(), c.Param("email"))
		respond(c, list, err)
	}
}
