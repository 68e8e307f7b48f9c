package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"mediavault/internal/api_context"
	"mediavault/internal/handler/api"
	"mediavault/internal/port"
	"mediavault/internal/usecase/auth"
)

// WithSessionAuth validates the session JWT from the cookie or the
// Authorization header, then checks the session is still live in the store so
// that sign-out takes effect before the token expires.
func WithSessionAuth(jwtSecret []byte, store port.SessionStore) func(http.Handler) http.Handler {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := rawToken(r)
			if raw == "" {
				rejectUnauthenticated(w, r, "missing session token")
				return
			}

			claims := jwt.MapClaims{}
			tok, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
				return jwtSecret, nil
			})
			if err != nil || !tok.Valid {
				rejectUnauthenticated(w, r, "unauthorized")
				return
			}

			if !claims.VerifyIssuer(auth.Issuer, true) {
				rejectUnauthenticated(w, r, "bad issuer")
				return
			}
			if !claims.VerifyExpiresAt(time.Now().Unix(), true) {
				rejectUnauthenticated(w, r, "token expired")
				return
			}

			sid, _ := claims["sid"].(string)
			sub, _ := claims["sub"].(string)
			if sid == "" || sub == "" {
				rejectUnauthenticated(w, r, "unauthorized")
				return
			}

			userID, alive, err := store.SessionUserID(r.Context(), sid)
			if err != nil {
				api.WriteError(w, http.StatusInternalServerError, "could not check session", err)
				return
			}
			if !alive || userID.String() != sub {
				rejectUnauthenticated(w, r, "session revoked or expired")
				return
			}

			ctx := context.WithValue(r.Context(), api_context.AuthUserIDKey, userID)
			ctx = context.WithValue(ctx, api_context.SessionIDKey, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func rawToken(r *http.Request) string {
	if c, err := r.Cookie(api.SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// rejectUnauthenticated sends browsers back to the login page and everything
// else a JSON 401.
func rejectUnauthenticated(w http.ResponseWriter, r *http.Request, msg string) {
	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	api.WriteError(w, http.StatusUnauthorized, msg, nil)
}
