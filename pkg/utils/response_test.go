package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func failWith(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	FailResponse(c, err)
	return w
}

func TestFailResponse_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", apperr.Unauthenticated("invalid credentials"), http.StatusUnauthorized},
		{"forbidden", apperr.Forbidden("no access"), http.StatusForbidden},
		{"not found", apperr.NotFound("hospital"), http.StatusNotFound},
		{"validation", apperr.ValidationField("role", "Role cannot be changed"), http.StatusBadRequest},
		{"conflict", apperr.Conflict("already reviewed"), http.StatusConflict},
		{"internal", apperr.Internal("db down", errors.New("dial tcp")), http.StatusInternalServerError},
		{"untyped", errors.New("plain error"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := failWith(tc.err)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestFailResponse_ValidationCarriesFields(t *testing.T) {
	w := failWith(apperr.ValidationField("role", "Role cannot be changed"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"fields"`)
	assert.Contains(t, w.Body.String(), "Role cannot be changed")
}

func TestFailResponse_InternalDetailsHidden(t *testing.T) {
	w := failWith(apperr.Internal("failed to fetch users", errors.New("dial tcp 10.0.0.1:3306")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "dial tcp", "infrastructure details must not leak")
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hash)
	assert.True(t, ComparePassword(hash, "correct-horse"))
	assert.False(t, ComparePassword(hash, "wrong-horse"))
}
