package media

import (
	"mediavault/internal/model"
	"mediavault/internal/port"
)

func toMediaOutput(m *model.Media, strg port.Storage, bucket string) port.MediaOutput {
	out := port.MediaOutput{
		ID:               m.ID,
		URL:              m.URL,
		OriginalFilename: m.OriginalFilename,
		MimeType:         m.MimeType,
		SizeBytes:        m.SizeBytes,
		AltText:          m.AltText,
		Tags:             m.Tags,
		Width:            m.Metadata.Width,
		Height:           m.Metadata.Height,
		PageCount:        m.Metadata.PageCount,
		UploaderID:       m.UploaderID,
		CreatedAt:        m.CreatedAt,
	}
	if m.ThumbnailKey != nil {
		u := strg.PublicURL(bucket, *m.ThumbnailKey)
		out.ThumbnailURL = &u
	}
	return out
}
