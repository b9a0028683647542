package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func protectedHandler(token string) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return AdminAuth(token)(next)
}

func TestAdminAuth_ValidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reservations", nil)
	req.Header.Set(AdminTokenHeader, "secret")
	rec := httptest.NewRecorder()

	protectedHandler("secret").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdminAuth_MissingToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reservations", nil)
	rec := httptest.NewRecorder()

	protectedHandler("secret").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuth_WrongToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reservations", nil)
	req.Header.Set(AdminTokenHeader, "guess")
	rec := httptest.NewRecorder()

	protectedHandler("secret").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
