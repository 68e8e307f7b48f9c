package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/ledongthuc/pdf"

	"mediavault/internal/model"
)

// ExtractMetadata pulls intrinsic properties out of the file content: pixel
// dimensions for images, page count for PDFs. Other types carry no metadata.
func ExtractMetadata(mimeType string, data []byte) (model.Metadata, error) {
	switch {
	case IsImage(mimeType):
		return extractImageMetadata(data)
	case IsPdf(mimeType):
		return extractPdfMetadata(data)
	default:
		return model.Metadata{}, nil
	}
}

func extractImageMetadata(data []byte) (model.Metadata, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return model.Metadata{}, fmt.Errorf("error decoding image config: %w", err)
	}

	return model.Metadata{
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

func extractPdfMetadata(data []byte) (model.Metadata, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return model.Metadata{}, fmt.Errorf("error opening pdf reader: %w", err)
	}

	return model.Metadata{
		PageCount: reader.NumPage(),
	}, nil
}
