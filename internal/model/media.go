package model

import (
	"time"

	"mediavault/internal/uuid"
)

// Media is a row of the medias table: one uploaded object in the library.
type Media struct {
	ID               uuid.UUID  `json:"id"`
	ObjectKey        string     `json:"object_key"`
	OriginalFilename string     `json:"original_filename"`
	URL              string     `json:"url"`
	MimeType         string     `json:"mime_type"`
	SizeBytes        int64      `json:"size_bytes"`
	AltText          *string    `json:"alt_text"`
	Tags             Tags       `json:"tags"`
	ThumbnailKey     *string    `json:"thumbnail_key"`
	UploaderID       *uuid.UUID `json:"uploader_id"`
	Metadata         Metadata   `json:"metadata"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
