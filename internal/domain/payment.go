package domain

import (
	"time" // Timestamps

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AmountPending is a staged payment awaiting confirmation
type AmountPending struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email string             `bson:"email" json:"email"`
	Price float64            `bson:"price" json:"price"`
}

// AmountDone is a finalized payment and the source of revenue totals
type AmountDone struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"` // Processor reference
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// AmountRequest is the body of POST /amounts
type AmountRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// PaymentRequest is the body of POST /payments
type PaymentRequest struct {
	Price         float64 `json:"price" binding:"required,gt=0"`
	TransactionID string  `json:"transactionId"`
}

// PaymentReceipt is returned by POST /payments
type PaymentReceipt struct {
	Payment InsertResult `json:"paymentResult"`
	Cleared DeleteResult `json:"deleteResult"`
}

// PaymentIntentRequest is the body of POST /create-payment-intent
type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"` // Major currency units
}

// PaymentIntentResponse carries the processor client secret
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// TokenRequest is the body of POST /jwt
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// TokenResponse carries an issued bearer credential
type TokenResponse struct {
	Token string `json:"token"`
}
