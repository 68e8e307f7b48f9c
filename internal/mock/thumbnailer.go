package mock

import "io"

// Thumbnailer implements thumbnail generation for tests.
type Thumbnailer struct {
	Out []byte
	Err error

	Called   bool
	MimeType string
	Width    int
}

func (t *Thumbnailer) Thumbnail(mimeType string, r io.Reader, width int) ([]byte, error) {
	t.Called = true
	t.MimeType = mimeType
	t.Width = width
	if t.Err != nil {
		return nil, t.Err
	}
	return t.Out, nil
}
