package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/casaflow/property-service/internal/models"
)

func newTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func signToken(t *testing.T, key *rsa.PrivateKey, sub string, role string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  exp.Unix(),
	})
	signed, err := tok.SignedString(key)
	require.NoError(t, err)
	return signed
}

func authedHandler(t *testing.T, wantUser uuid.UUID, wantRole models.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, wantUser, session.UserID)
		require.Equal(t, wantRole, session.Role)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	key := newTestKey(t)
	userID := uuid.New()
	handler := AuthMiddleware(&key.PublicKey)(authedHandler(t, userID, models.RoleLandlord))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, key, userID.String(), "landlord", time.Now().Add(time.Hour)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	key := newTestKey(t)
	handler := AuthMiddleware(&key.PublicKey)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	key := newTestKey(t)
	handler := AuthMiddleware(&key.PublicKey)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, key, uuid.New().String(), "landlord", time.Now().Add(-time.Hour)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsWrongKey(t *testing.T) {
	key := newTestKey(t)
	other := newTestKey(t)
	handler := AuthMiddleware(&key.PublicKey)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a forged token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, other, uuid.New().String(), "landlord", time.Now().Add(time.Hour)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsUnknownRole(t *testing.T) {
	key := newTestKey(t)
	handler := AuthMiddleware(&key.PublicKey)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an invalid role claim")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, key, uuid.New().String(), "admin", time.Now().Add(time.Hour)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleForbidsOtherRole(t *testing.T) {
	handler := RequireRole(models.RoleLandlord)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("tenant must not reach a landlord route")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	req = req.WithContext(WithSession(req.Context(), Session{UserID: uuid.New(), Role: models.RoleTenant}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRolePassesMatchingRole(t *testing.T) {
	handler := RequireRole(models.RoleTenant)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/my/unit", nil)
	req = req.WithContext(WithSession(req.Context(), Session{UserID: uuid.New(), Role: models.RoleTenant}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}
