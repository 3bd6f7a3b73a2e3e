package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-management-service/config"
	"clinic-management-service/pkg/jwt"

	"github.com/stretchr/testify/assert"
)

func newTestAuthMiddleware() *AuthMiddleware {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	// Redis is only reached once a token validates, so these tests can run
	// without a live connection.
	return NewAuthMiddleware(jwtService, nil)
}

func protectedHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateMissingHeader(t *testing.T) {
	m := newTestAuthMiddleware()
	called := false

	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	rec := httptest.NewRecorder()
	m.Authenticate(protectedHandler(&called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	m := newTestAuthMiddleware()
	called := false

	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	req.Header.Set("Authorization", "Token abc123")
	rec := httptest.NewRecorder()
	m.Authenticate(protectedHandler(&called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	m := newTestAuthMiddleware()
	called := false

	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	req.Header.Set("Authorization", "Bearer not-a-valid-token")
	rec := httptest.NewRecorder()
	m.Authenticate(protectedHandler(&called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
