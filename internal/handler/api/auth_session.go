package api

import (
	"errors"
	"log"
	"net/http"

	"mediavault/internal/api_context"
	"mediavault/internal/port"
	"mediavault/internal/usecase/auth"
)

// GetSessionHandler returns the signed-in user behind the current session.
func GetSessionHandler(svc port.SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		out, err := svc.GetSession(r.Context(), userID)
		if err != nil {
			if errors.Is(err, auth.ErrUserNotFound) {
				WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get session details", err)
			return
		}

		w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
		RespondJSON(w, http.StatusOK, out)
	}
}

// SignOutHandler revokes the current session and clears the cookie.
func SignOutHandler(svc port.SignOuter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := api_context.SessionIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		if err := svc.SignOut(r.Context(), sid); err != nil {
			WriteError(w, http.StatusInternalServerError, "Failed to sign out", err)
			return
		}

		ClearSessionCookie(w)
		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Successfully signed out session %q", sid)
	}
}
