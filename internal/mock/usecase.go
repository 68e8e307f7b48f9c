package mock

import (
	"context"

	"mediavault/internal/port"
	"mediavault/internal/uuid"
)

// MockMediaUploader implements port.MediaUploader for tests.
type MockMediaUploader struct {
	Out    port.MediaOutput
	Err    error
	Called bool
	In     port.UploadMediaInput
}

func (m *MockMediaUploader) UploadMedia(ctx context.Context, in port.UploadMediaInput) (port.MediaOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockMediaLister implements port.MediaLister for tests.
type MockMediaLister struct {
	Out    port.ListMediasOutput
	Err    error
	Called bool
	In     port.ListMediasInput
}

func (m *MockMediaLister) ListMedias(ctx context.Context, in port.ListMediasInput) (port.ListMediasOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockMediaGetter implements port.MediaGetter for tests.
type MockMediaGetter struct {
	Out    port.MediaOutput
	Err    error
	Called bool
	ID     uuid.UUID
}

func (m *MockMediaGetter) GetMedia(ctx context.Context, id uuid.UUID) (port.MediaOutput, error) {
	m.Called = true
	m.ID = id
	return m.Out, m.Err
}

// MockMediaUpdater implements port.MediaUpdater for tests.
type MockMediaUpdater struct {
	Out    port.MediaOutput
	Err    error
	Called bool
	In     port.UpdateMediaInput
}

func (m *MockMediaUpdater) UpdateMedia(ctx context.Context, in port.UpdateMediaInput) (port.MediaOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockMediaDeleter implements port.MediaDeleter for tests.
type MockMediaDeleter struct {
	Err    error
	Called bool
	ID     uuid.UUID
}

func (m *MockMediaDeleter) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

// MockThumbnailGenerator implements port.ThumbnailGenerator for tests.
type MockThumbnailGenerator struct {
	Err    error
	Called bool
	ID     uuid.UUID
}

func (m *MockThumbnailGenerator) GenerateThumbnail(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

// MockOrphanSweeper implements port.OrphanSweeper for tests.
type MockOrphanSweeper struct {
	Err    error
	Called bool
}

func (m *MockOrphanSweeper) SweepOrphans(ctx context.Context) error {
	m.Called = true
	return m.Err
}

// MockMagicLinkRequester implements port.MagicLinkRequester for tests.
type MockMagicLinkRequester struct {
	Err    error
	Called bool
	Email  string
}

func (m *MockMagicLinkRequester) RequestMagicLink(ctx context.Context, email string) error {
	m.Called = true
	m.Email = email
	return m.Err
}

// MockMagicLinkVerifier implements port.MagicLinkVerifier for tests.
type MockMagicLinkVerifier struct {
	Out    port.SessionOutput
	Err    error
	Called bool
	Token  string
}

func (m *MockMagicLinkVerifier) VerifyMagicLink(ctx context.Context, token string) (port.SessionOutput, error) {
	m.Called = true
	m.Token = token
	return m.Out, m.Err
}

// MockOAuthStarter implements port.OAuthStarter for tests.
type MockOAuthStarter struct {
	Out      string
	Err      error
	Called   bool
	Provider string
}

func (m *MockOAuthStarter) StartOAuth(ctx context.Context, provider string) (string, error) {
	m.Called = true
	m.Provider = provider
	return m.Out, m.Err
}

// MockOAuthCompleter implements port.OAuthCompleter for tests.
type MockOAuthCompleter struct {
	Out      port.SessionOutput
	Err      error
	Called   bool
	Provider string
	Code     string
	State    string
}

func (m *MockOAuthCompleter) CompleteOAuth(ctx context.Context, provider, code, state string) (port.SessionOutput, error) {
	m.Called = true
	m.Provider = provider
	m.Code = code
	m.State = state
	return m.Out, m.Err
}

// MockSessionGetter implements port.SessionGetter for tests.
type MockSessionGetter struct {
	Out    port.UserOutput
	Err    error
	Called bool
	UserID uuid.UUID
}

func (m *MockSessionGetter) GetSession(ctx context.Context, userID uuid.UUID) (port.UserOutput, error) {
	m.Called = true
	m.UserID = userID
	return m.Out, m.Err
}

// MockSignOuter implements port.SignOuter for tests.
type MockSignOuter struct {
	Err    error
	Called bool
	SID    string
}

func (m *MockSignOuter) SignOut(ctx context.Context, sid string) error {
	m.Called = true
	m.SID = sid
	return m.Err
}
