package media

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"
)

// NewObjectKey builds a collision-resistant storage key:
// a date prefix for browsability, the upload instant in nanoseconds, a random
// suffix, and the original file extension (lowercased).
//
//	2026/08/30/1767100000123456789_a1b2c3d4e5f6.png
func NewObjectKey(now time.Time, originalFilename string) string {
	suffix := make([]byte, 6)
	_, _ = rand.Read(suffix)

	ext := strings.ToLower(path.Ext(originalFilename))
	return fmt.Sprintf("%s/%d_%s%s",
		now.UTC().Format("2006/01/02"),
		now.UTC().UnixNano(),
		hex.EncodeToString(suffix),
		ext,
	)
}

// ThumbnailKey is where the worker stores the derived thumbnail of a media.
func ThumbnailKey(id fmt.Stringer) string {
	return path.Join("thumbnails", id.String()+".webp")
}
