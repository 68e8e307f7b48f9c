package api

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"mediavault/internal/api_context"
	"mediavault/internal/port"
	"mediavault/internal/usecase/media"
)

// maxUploadBytes caps the whole multipart body, file plus text fields.
const maxUploadBytes = media.MaxFileSize + 64<<10

// UploadMediaHandler stores the uploaded file and creates its metadata record
// in one round-trip.
func UploadMediaHandler(svc port.MediaUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				WriteError(w, http.StatusRequestEntityTooLarge, "File exceeds the maximum allowed size", nil)
				return
			}
			WriteError(w, http.StatusBadRequest, "invalid multipart payload", err)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "file field is required", err)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "could not read uploaded file", err)
			return
		}

		in := port.UploadMediaInput{
			OriginalFilename: header.Filename,
			Data:             data,
			Tags:             parseTags(r.FormValue("tags")),
		}
		if alt := strings.TrimSpace(r.FormValue("alt_text")); alt != "" {
			in.AltText = &alt
		}
		if uploaderID, ok := api_context.AuthUserIDFromContext(r.Context()); ok {
			in.UploaderID = &uploaderID
		}

		out, err := svc.UploadMedia(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, media.ErrEmptyFile):
				WriteError(w, http.StatusBadRequest, "File is empty", nil)
			case errors.Is(err, media.ErrFileTooLarge):
				WriteError(w, http.StatusRequestEntityTooLarge, "File exceeds the maximum allowed size", nil)
			case errors.Is(err, media.ErrMimeNotAllowed):
				WriteError(w, http.StatusUnsupportedMediaType, "File type is not allowed", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Failed to upload media", err)
			}
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		log.Printf("✅  Successfully uploaded media #%s (%q)", out.ID, out.OriginalFilename)
	}
}

func parseTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
