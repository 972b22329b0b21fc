// Package payment creates payment intents with Stripe.
package payment

import (
	"context"
	"errors"
	"math"

	"blood_donation/internal/apperr"

	stripe "github.com/stripe/stripe-go"
	"github.com/stripe/stripe-go/paymentintent"
)

// CardMethod is the only payment method type offered to clients.
const CardMethod = "card"

// intentCreator is the part of the Stripe payment intent client used here.
type intentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// Stripe creates card payment intents in a fixed currency.
type Stripe struct {
	intents  intentCreator
	currency string
}

// NewStripe returns a client bound to the given secret key.
func NewStripe(secretKey, currency string) *Stripe {
	return &Stripe{
		intents:  &paymentintent.Client{B: stripe.GetBackend(stripe.APIBackend), Key: secretKey},
		currency: currency,
	}
}

// MinorUnits converts a major-unit price to an integer minor-unit amount, truncating.
func MinorUnits(price float64) int64 {
	return int64(math.Trunc(price * 100))
}

// CreateIntent requests a client secret for price, given in major currency units.
func (s *Stripe) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := MinorUnits(price)
	if amount <= 0 {
		return "", apperr.New(apperr.BadRequest, "price must be positive")
	}
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(s.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{CardMethod}),
	}
	params.Context = ctx
	pi, err := s.intents.New(params)
	if err != nil {
		var se *stripe.Error
		if errors.As(err, &se) && se.Msg != "" {
			return "", apperr.Wrap(apperr.UpstreamFailure, se.Msg, err)
		}
		return "", apperr.Wrap(apperr.UpstreamFailure, "payment processor error", err)
	}
	return pi.ClientSecret, nil
}
