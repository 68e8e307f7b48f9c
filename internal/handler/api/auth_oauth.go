package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mediavault/internal/port"
	"mediavault/internal/usecase/auth"
)

// StartOAuthHandler redirects the browser to the provider consent screen.
func StartOAuthHandler(svc port.OAuthStarter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provider := chi.URLParam(r, "provider")

		authorizeURL, err := svc.StartOAuth(r.Context(), provider)
		if err != nil {
			if errors.Is(err, auth.ErrUnknownProvider) {
				WriteError(w, http.StatusNotFound, "Unknown sign-in provider", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Failed to start sign-in", err)
			return
		}

		http.Redirect(w, r, authorizeURL, http.StatusFound)
		log.Printf("✅  Redirecting to %s consent screen", provider)
	}
}

// OAuthCallbackHandler finishes the authorization-code flow, opens a session
// and sends the browser back to the dashboard.
func OAuthCallbackHandler(svc port.OAuthCompleter, appBaseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provider := chi.URLParam(r, "provider")
		q := r.URL.Query()
		code, state := q.Get("code"), q.Get("state")
		if code == "" || state == "" {
			WriteError(w, http.StatusBadRequest, "code and state are required", nil)
			return
		}

		out, err := svc.CompleteOAuth(r.Context(), provider, code, state)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrUnknownProvider):
				WriteError(w, http.StatusNotFound, "Unknown sign-in provider", nil)
			case errors.Is(err, auth.ErrInvalidState):
				WriteError(w, http.StatusUnauthorized, "Sign-in state is invalid or has expired", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Failed to complete sign-in", err)
			}
			return
		}

		SetSessionCookie(w, out.Token, out.ExpiresAt)
		log.Printf("✅  Successfully signed in %s via %s", out.User.Email, provider)
		http.Redirect(w, r, appBaseURL, http.StatusSeeOther)
	}
}
