package api

import (
	"net/http/httptest"
	"testing"

	"blood_donation/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryContext(rawQuery string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestPageFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		page  store.Page
		empty bool
	}{
		{"no size returns everything", "page=3", store.Page{}, false},
		{"zero size", "page=1&size=0", store.Page{}, true},
		{"window", "page=2&size=5", store.Page{Skip: 10, Limit: 5}, false},
		{"large size keeps its own window", "page=1&size=200", store.Page{Skip: 200, Limit: 200}, false},
		{"negative page counts as zero", "page=-4&size=3", store.Page{Limit: 3}, false},
		{"non-numeric size counts as zero", "page=1&size=ten", store.Page{}, true},
		{"skip overflow is empty", "page=4611686018427387904&size=2", store.Page{}, true},
		{"largest representable skip", "page=4611686018427387903&size=2", store.Page{Skip: 9223372036854775806, Limit: 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, empty := pageFromQuery(queryContext(tt.query))
			assert.Equal(t, tt.page, page)
			assert.Equal(t, tt.empty, empty)
		})
	}
}
