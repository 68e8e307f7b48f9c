package mock

import (
	"context"

	"mediavault/internal/port"
	"mediavault/internal/uuid"
)

// MockHTTPRenderer implements port.HTTPRenderer for tests.
type MockHTTPRenderer struct {
	Data []byte
	Etag string
	Err  error

	GetCalled  bool
	ListCalled bool
	Getter     port.MediaGetter
	Lister     port.MediaLister
	ID         uuid.UUID
	ListIn     port.ListMediasInput
}

func (m *MockHTTPRenderer) RenderGetMedia(ctx context.Context, getter port.MediaGetter, id uuid.UUID) ([]byte, string, error) {
	m.GetCalled = true
	m.Getter = getter
	m.ID = id
	return m.Data, m.Etag, m.Err
}

func (m *MockHTTPRenderer) RenderListMedias(ctx context.Context, lister port.MediaLister, in port.ListMediasInput) ([]byte, string, error) {
	m.ListCalled = true
	m.Lister = lister
	m.ListIn = in
	return m.Data, m.Etag, m.Err
}
