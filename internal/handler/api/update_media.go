package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mediavault/internal/api_context"
	"mediavault/internal/port"
	"mediavault/internal/usecase/media"
	"mediavault/internal/validation"
)

type UpdateMediaRequest struct {
	AltText *string   `json:"alt_text" validate:"omitempty,max=500"`
	Tags    *[]string `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
}

// UpdateMediaHandler edits the alt text and tags of a media; absent fields are
// left unchanged.
func UpdateMediaHandler(svc port.MediaUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.MediaIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		var req UpdateMediaRequest
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

		input := port.UpdateMediaInput{
			ID:      id,
			AltText: req.AltText,
			Tags:    req.Tags,
		}
		out, err := svc.UpdateMedia(r.Context(), input)
		if err != nil {
			if errors.Is(err, media.ErrObjectNotFound) {
				WriteError(w, http.StatusNotFound, "Media not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Failed to update media", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Successfully updated media #%s", id)
	}
}
