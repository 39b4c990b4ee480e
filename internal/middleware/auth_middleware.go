package middleware

import (
	"context"
	"crypto/rsa"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/casaflow/property-service/internal/models"
	"github.com/casaflow/property-service/internal/utils"
)

// Session is the authenticated caller. It is constructed per request
// and passed through the request context; there is no process-wide
// auth state.
type Session struct {
	UserID uuid.UUID
	Role   models.Role
}

type contextKey string

const contextKeySession = contextKey("session")

// SessionFromContext retrieves the Session placed by AuthMiddleware.
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKeySession).(Session)
	return s, ok
}

// WithSession is exported for tests that exercise handlers directly.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKeySession, s)
}

// AuthMiddleware validates the bearer token (RS256) and loads the
// session into the request context. Tokens carry `sub` (user ID) and
// `role` ("landlord" | "tenant") claims.
func AuthMiddleware(pub *rsa.PublicKey) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractAccessToken(r)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, err.Error(), nil,
				)
				return
			}

			tok, vErr := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return pub, nil
			})
			if vErr != nil || !tok.Valid {
				if errors.Is(vErr, jwt.ErrTokenExpired) {
					utils.RespondErrorWithCode(
						w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", nil, vErr,
					)
					return
				}
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, vErr,
				)
				return
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid claims", nil,
				)
				return
			}

			session, err := sessionFromClaims(claims)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid claims", nil, err,
				)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// RequireRole gates a subtree to one role; it assumes AuthMiddleware
// already ran.
func RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := SessionFromContext(r.Context())
			if !ok {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing session", nil,
				)
				return
			}
			if session.Role != role {
				utils.RespondErrorWithCode(
					w, http.StatusForbidden, utils.ErrCodeForbidden, "Insufficient role", nil,
				)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

/* ---------- internals ---------- */

func extractAccessToken(r *http.Request) (string, error) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", errors.New("missing Authorization header")
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("malformed Authorization header")
	}
	return parts[1], nil
}

func sessionFromClaims(claims jwt.MapClaims) (Session, error) {
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return Session{}, errors.New("missing sub claim")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return Session{}, errors.New("sub claim is not a UUID")
	}
	roleStr, _ := claims["role"].(string)
	role, err := models.ParseRole(roleStr)
	if err != nil {
		return Session{}, err
	}
	return Session{UserID: userID, Role: role}, nil
}
