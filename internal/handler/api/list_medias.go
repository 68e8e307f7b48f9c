package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"mediavault/internal/port"
	"mediavault/internal/usecase/media"
)

// ListMediasHandler returns a gallery page, optionally filtered by a search
// term and resumed from a cursor.
func ListMediasHandler(renderer port.HTTPRenderer, svc port.MediaLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		in := port.ListMediasInput{
			Search: q.Get("search"),
			Cursor: q.Get("cursor"),
		}
		if rawLimit := q.Get("limit"); rawLimit != "" {
			limit, err := strconv.Atoi(rawLimit)
			if err != nil || limit < 1 {
				WriteError(w, http.StatusBadRequest, "limit must be a positive integer", nil)
				return
			}
			in.Limit = limit
		}

		raw, etag, err := renderer.RenderListMedias(r.Context(), svc, in)
		if err != nil {
			if errors.Is(err, media.ErrBadCursor) {
				WriteError(w, http.StatusBadRequest, "Invalid pagination cursor", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not list medias", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "private, max-age=60")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			log.Print("✅  Returning cached media list")
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		log.Print("✅  Successfully returned media list")
	}
}
