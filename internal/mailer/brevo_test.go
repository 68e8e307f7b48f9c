package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBrevoMailer_SendMagicLink(t *testing.T) {
	var gotAPIKey string
	var gotReq sendEmailReq
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	m := NewBrevoMailer("key-123", "noreply@example.com", "MediaVault")
	m.endpoint = srv.URL

	err := m.SendMagicLink(context.Background(), "writer@example.com", "https://admin.example.com/auth/magic_link/verify?token=tok-1")
	if err != nil {
		t.Fatalf("SendMagicLink: %v", err)
	}

	if gotAPIKey != "key-123" {
		t.Errorf("api-key header = %q; want key-123", gotAPIKey)
	}
	if gotReq.Sender["email"] != "noreply@example.com" || gotReq.Sender["name"] != "MediaVault" {
		t.Errorf("sender = %v", gotReq.Sender)
	}
	if len(gotReq.To) != 1 || gotReq.To[0]["email"] != "writer@example.com" {
		t.Errorf("to = %v; want writer@example.com", gotReq.To)
	}
	if gotReq.Subject != "Your sign-in link" {
		t.Errorf("subject = %q", gotReq.Subject)
	}
	if !strings.Contains(gotReq.HtmlContent, "token=tok-1") {
		t.Errorf("html content is missing the link: %s", gotReq.HtmlContent)
	}
}

func TestBrevoMailer_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Key not found"}`))
	}))
	defer srv.Close()

	m := NewBrevoMailer("bad-key", "noreply@example.com", "MediaVault")
	m.endpoint = srv.URL

	err := m.SendMagicLink(context.Background(), "writer@example.com", "https://admin.example.com/verify")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "status 401") {
		t.Errorf("error = %v; want status 401 mentioned", err)
	}
}

func TestBrevoMailer_ServerUnreachable(t *testing.T) {
	m := NewBrevoMailer("key", "noreply@example.com", "MediaVault")
	m.endpoint = "http://127.0.0.1:1"

	if err := m.SendMagicLink(context.Background(), "writer@example.com", "link"); err == nil {
		t.Fatal("expected error, got nil")
	}
}
