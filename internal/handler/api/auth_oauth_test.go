package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"mediavault/internal/mock"
	"mediavault/internal/port"
	"mediavault/internal/usecase/auth"
)

func withProvider(req *http.Request, provider string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("provider", provider)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestStartOAuthHandler_Redirects(t *testing.T) {
	svc := &mock.MockOAuthStarter{Out: "https://github.com/login/oauth/authorize?state=abc"}

	req := withProvider(httptest.NewRequest("GET", "/auth/oauth/github", nil), "github")
	rec := httptest.NewRecorder()
	StartOAuthHandler(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusFound)
	}
	if svc.Provider != "github" {
		t.Errorf("provider passed = %q; want github", svc.Provider)
	}
	if loc := rec.Header().Get("Location"); loc != svc.Out {
		t.Errorf("Location = %q; want %q", loc, svc.Out)
	}
}

func TestStartOAuthHandler_UnknownProvider(t *testing.T) {
	svc := &mock.MockOAuthStarter{Err: auth.ErrUnknownProvider}

	req := withProvider(httptest.NewRequest("GET", "/auth/oauth/gitlab", nil), "gitlab")
	rec := httptest.NewRecorder()
	StartOAuthHandler(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusNotFound)
	}
}

func TestOAuthCallbackHandler_Success(t *testing.T) {
	out := port.SessionOutput{Token: "jwt-token", ExpiresAt: time.Now().Add(time.Hour), User: port.UserOutput{Email: "writer@example.com"}}
	svc := &mock.MockOAuthCompleter{Out: out}

	req := withProvider(httptest.NewRequest("GET", "/auth/oauth/github/callback?code=c1&state=s1", nil), "github")
	rec := httptest.NewRecorder()
	OAuthCallbackHandler(svc, "https://admin.example.com")(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d; want %d (body %s)", rec.Code, http.StatusSeeOther, rec.Body)
	}
	if svc.Provider != "github" || svc.Code != "c1" || svc.State != "s1" {
		t.Errorf("use case called with (%q, %q, %q)", svc.Provider, svc.Code, svc.State)
	}
	if loc := rec.Header().Get("Location"); loc != "https://admin.example.com" {
		t.Errorf("Location = %q", loc)
	}
	if c := findCookie(t, rec.Result().Cookies(), SessionCookie); c.Value != "jwt-token" {
		t.Errorf("cookie value = %q; want jwt-token", c.Value)
	}
}

func TestOAuthCallbackHandler_MissingParams(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"no code", "/auth/oauth/github/callback?state=s1"},
		{"no state", "/auth/oauth/github/callback?code=c1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.MockOAuthCompleter{}

			req := withProvider(httptest.NewRequest("GET", tc.url, nil), "github")
			rec := httptest.NewRecorder()
			OAuthCallbackHandler(svc, "https://admin.example.com")(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d; want %d", rec.Code, http.StatusBadRequest)
			}
			if svc.Called {
				t.Error("use case should not run with missing params")
			}
		})
	}
}

func TestOAuthCallbackHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
	}{
		{"unknown provider", auth.ErrUnknownProvider, http.StatusNotFound},
		{"stale state", auth.ErrInvalidState, http.StatusUnauthorized},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.MockOAuthCompleter{Err: tc.svcErr}

			req := withProvider(httptest.NewRequest("GET", "/auth/oauth/github/callback?code=c1&state=s1", nil), "github")
			rec := httptest.NewRecorder()
			OAuthCallbackHandler(svc, "https://admin.example.com")(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if len(rec.Result().Cookies()) != 0 {
				t.Error("no cookie should be set on failure")
			}
		})
	}
}
