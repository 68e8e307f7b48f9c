package thumbnailer

import (
	"bytes"
	"fmt"
	"image"
	"io"

	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"mediavault/internal/port"
)

const webpQuality = 80

// WebpThumbnailer downscales images and re-encodes them as lossy WebP.
type WebpThumbnailer struct{}

// compile-time check: *WebpThumbnailer must satisfy port.Thumbnailer
var _ port.Thumbnailer = (*WebpThumbnailer)(nil)

func NewWebpThumbnailer() *WebpThumbnailer {
	return &WebpThumbnailer{}
}

// Thumbnail decodes the source image, resizes it to the given width keeping
// the aspect ratio, and returns the WebP encoded result. Images already
// narrower than the target width are re-encoded without resizing.
func (t *WebpThumbnailer) Thumbnail(mimeType string, r io.Reader, width int) ([]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s image: %w", mimeType, err)
	}

	if img.Bounds().Dx() > width {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("could not encode thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}
