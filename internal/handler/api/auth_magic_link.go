package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"mediavault/internal/port"
	"mediavault/internal/usecase/auth"
	"mediavault/internal/validation"
)

type RequestMagicLinkRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RequestMagicLinkHandler emails a one-time sign-in link. The response is the
// same whether or not the address belongs to a known user.
func RequestMagicLinkHandler(svc port.MagicLinkRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RequestMagicLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			log.Printf("❌  Validation failed: %s", errsJSON)
			return
		}

		if err := svc.RequestMagicLink(r.Context(), req.Email); err != nil {
			if errors.Is(err, auth.ErrRateLimited) {
				WriteError(w, http.StatusTooManyRequests, "Too many sign-in requests, try again later", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Failed to send sign-in link", err)
			return
		}

		w.WriteHeader(http.StatusAccepted)
		log.Printf("✅  Sign-in link sent to %s", req.Email)
	}
}

// VerifyMagicLinkHandler consumes the token from the emailed link and opens a
// session. Browsers are sent back to the dashboard with the session cookie
// set; API clients get the session as JSON.
func VerifyMagicLinkHandler(svc port.MagicLinkVerifier, appBaseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			WriteError(w, http.StatusBadRequest, "token is required", nil)
			return
		}

		out, err := svc.VerifyMagicLink(r.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				WriteError(w, http.StatusUnauthorized, "Sign-in link is invalid or has expired", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Failed to verify sign-in link", err)
			return
		}

		SetSessionCookie(w, out.Token, out.ExpiresAt)
		log.Printf("✅  Successfully signed in %s via magic link", out.User.Email)

		if strings.Contains(r.Header.Get("Accept"), "text/html") {
			http.Redirect(w, r, appBaseURL, http.StatusSeeOther)
			return
		}
		RespondJSON(w, http.StatusOK, out)
	}
}
