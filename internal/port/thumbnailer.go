package port

import "io"

// Thumbnailer produces a downscaled WebP rendition of an image stream.
type Thumbnailer interface {
	Thumbnail(mimeType string, r io.Reader, width int) ([]byte, error)
}
