package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mediavault/internal/mock"
	"mediavault/internal/usecase/media"
)

func TestListMediasHandler_Success(t *testing.T) {
	renderer := &mock.MockHTTPRenderer{Data: []byte(`{"items":[]}`), Etag: `"cafebabe"`}
	svc := &mock.MockMediaLister{}

	req := httptest.NewRequest("GET", "/medias?search=sunset&limit=20&cursor=abc", nil)
	rec := httptest.NewRecorder()
	ListMediasHandler(renderer, svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	if !renderer.ListCalled {
		t.Fatal("renderer was not called")
	}
	if renderer.ListIn.Search != "sunset" || renderer.ListIn.Limit != 20 || renderer.ListIn.Cursor != "abc" {
		t.Errorf("renderer input = %+v; want search/limit/cursor from query", renderer.ListIn)
	}
	if got := rec.Header().Get("ETag"); got != `"cafebabe"` {
		t.Errorf("ETag = %q; want %q", got, `"cafebabe"`)
	}
	if got := rec.Header().Get("Cache-Control"); got != "private, max-age=60" {
		t.Errorf("Cache-Control = %q", got)
	}
	if body := rec.Body.String(); body != `{"items":[]}` {
		t.Errorf("body = %q", body)
	}
}

func TestListMediasHandler_NotModified(t *testing.T) {
	renderer := &mock.MockHTTPRenderer{Data: []byte(`{"items":[]}`), Etag: `"cafebabe"`}
	svc := &mock.MockMediaLister{}

	req := httptest.NewRequest("GET", "/medias", nil)
	req.Header.Set("If-None-Match", `"cafebabe"`)
	rec := httptest.NewRecorder()
	ListMediasHandler(renderer, svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusNotModified)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q; want empty", rec.Body)
	}
}

func TestListMediasHandler_BadLimit(t *testing.T) {
	tests := []string{"abc", "0", "-5"}
	for _, limit := range tests {
		t.Run(limit, func(t *testing.T) {
			renderer := &mock.MockHTTPRenderer{}
			svc := &mock.MockMediaLister{}

			req := httptest.NewRequest("GET", "/medias?limit="+limit, nil)
			rec := httptest.NewRecorder()
			ListMediasHandler(renderer, svc).ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d; want %d", rec.Code, http.StatusBadRequest)
			}
			if renderer.ListCalled {
				t.Error("renderer should not run with a bad limit")
			}
		})
	}
}

func TestListMediasHandler_BadCursor(t *testing.T) {
	renderer := &mock.MockHTTPRenderer{Err: media.ErrBadCursor}
	svc := &mock.MockMediaLister{}

	req := httptest.NewRequest("GET", "/medias?cursor=%25%25%25", nil)
	rec := httptest.NewRecorder()
	ListMediasHandler(renderer, svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestListMediasHandler_InternalError(t *testing.T) {
	renderer := &mock.MockHTTPRenderer{Err: errors.New("boom")}
	svc := &mock.MockMediaLister{}

	req := httptest.NewRequest("GET", "/medias", nil)
	rec := httptest.NewRecorder()
	ListMediasHandler(renderer, svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusInternalServerError)
	}
}
