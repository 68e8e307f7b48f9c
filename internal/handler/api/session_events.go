package api

import (
	"fmt"
	"log"
	"net/http"

	"mediavault/internal/api_context"
	"mediavault/internal/port"
)

// SessionEventsHandler streams session lifecycle events over SSE so open
// dashboard tabs learn about a sign-out as it happens.
func SessionEventsHandler(store port.SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := api_context.SessionIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			WriteError(w, http.StatusInternalServerError, "streaming is not supported", nil)
			return
		}

		events, closer, err := store.SubscribeSessionEvents(r.Context(), sid)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "could not subscribe to session events", err)
			return
		}
		defer closer()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		log.Printf("✅  Streaming events for session %q", sid)
		for {
			select {
			case <-r.Context().Done():
				return
			case event, open := <-events:
				if !open {
					return
				}
				fmt.Fprintf(w, "event: %s\ndata: {}\n\n", event)
				flusher.Flush()
			}
		}
	}
}
