package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	cases := map[Kind]int{
		Unauthenticated: http.StatusUnauthorized,
		Forbidden:       http.StatusForbidden,
		NotFound:        http.StatusNotFound,
		BadRequest:      http.StatusBadRequest,
		Timeout:         http.StatusGatewayTimeout,
		UpstreamFailure: http.StatusBadGateway,
		Internal:        http.StatusInternalServerError,
		Kind("other"):   http.StatusInternalServerError,
	}
	for k, want := range cases {
		assert.Equal(t, want, k.Status(), string(k))
	}
}

func TestKindOfWrapped(t *testing.T) {
	cause := errors.New("socket closed")
	err := fmt.Errorf("find user: %w", Wrap(UpstreamFailure, "database error", cause))

	assert.Equal(t, UpstreamFailure, KindOf(err))
	assert.Equal(t, "database error", Message(err))
	assert.ErrorIs(t, err, cause)
}

func TestKindOfUnclassified(t *testing.T) {
	assert.Equal(t, Timeout, KindOf(fmt.Errorf("x: %w", context.DeadlineExceeded)))
	assert.Equal(t, Internal, KindOf(errors.New("boom")))
	assert.Equal(t, "internal server error", Message(errors.New("boom")))
}

func TestBodyOf(t *testing.T) {
	b := BodyOf(New(NotFound, "user not found"))
	assert.Equal(t, Body{Error: NotFound, Message: "user not found"}, b)
}
