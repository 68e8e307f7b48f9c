package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mediavault/internal/api_context"
	"mediavault/internal/mock"
	"mediavault/internal/port"
	"mediavault/internal/usecase/auth"
	"mediavault/internal/uuid"
)

func TestGetSessionHandler_Success(t *testing.T) {
	userID := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	svc := &mock.MockSessionGetter{Out: port.UserOutput{ID: userID, Email: "writer@example.com"}}

	req := httptest.NewRequest("GET", "/auth/session", nil)
	req = req.WithContext(context.WithValue(req.Context(), api_context.AuthUserIDKey, userID))
	rec := httptest.NewRecorder()
	GetSessionHandler(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	if !svc.Called || svc.UserID != userID {
		t.Errorf("use case called with %s; want %s", svc.UserID, userID)
	}
	if got := rec.Header().Get("Cache-Control"); !strings.Contains(got, "no-store") {
		t.Errorf("Cache-Control = %q; want no-store", got)
	}
	if !strings.Contains(rec.Body.String(), "writer@example.com") {
		t.Errorf("body = %s; want user JSON", rec.Body)
	}
}

func TestGetSessionHandler_NoAuthContext(t *testing.T) {
	svc := &mock.MockSessionGetter{}

	req := httptest.NewRequest("GET", "/auth/session", nil)
	rec := httptest.NewRecorder()
	GetSessionHandler(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusUnauthorized)
	}
	if svc.Called {
		t.Error("use case should not run without auth context")
	}
}

func TestGetSessionHandler_UserGone(t *testing.T) {
	userID := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	svc := &mock.MockSessionGetter{Err: auth.ErrUserNotFound}

	req := httptest.NewRequest("GET", "/auth/session", nil)
	req = req.WithContext(context.WithValue(req.Context(), api_context.AuthUserIDKey, userID))
	rec := httptest.NewRecorder()
	GetSessionHandler(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestSignOutHandler_Success(t *testing.T) {
	svc := &mock.MockSignOuter{}

	req := httptest.NewRequest("POST", "/auth/sign_out", nil)
	req = req.WithContext(context.WithValue(req.Context(), api_context.SessionIDKey, "sid-123"))
	rec := httptest.NewRecorder()
	SignOutHandler(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusNoContent)
	}
	if !svc.Called || svc.SID != "sid-123" {
		t.Errorf("use case called with %q; want sid-123", svc.SID)
	}

	cookie := findCookie(t, rec.Result().Cookies(), SessionCookie)
	if cookie.Value != "" || cookie.MaxAge != -1 {
		t.Errorf("cookie not cleared: value=%q maxAge=%d", cookie.Value, cookie.MaxAge)
	}
}

func TestSignOutHandler_NoSessionContext(t *testing.T) {
	svc := &mock.MockSignOuter{}

	req := httptest.NewRequest("POST", "/auth/sign_out", nil)
	rec := httptest.NewRecorder()
	SignOutHandler(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusUnauthorized)
	}
	if svc.Called {
		t.Error("use case should not run without session context")
	}
}

func TestSignOutHandler_StoreError(t *testing.T) {
	svc := &mock.MockSignOuter{Err: errors.New("redis down")}

	req := httptest.NewRequest("POST", "/auth/sign_out", nil)
	req = req.WithContext(context.WithValue(req.Context(), api_context.SessionIDKey, "sid-123"))
	rec := httptest.NewRecorder()
	SignOutHandler(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusInternalServerError)
	}
}
