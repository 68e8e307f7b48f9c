package port

import (
	"context"
	"time"

	"mediavault/internal/uuid"
)

type UUIDGen func() uuid.UUID

// MediaOutput is the client-facing representation of a media record.
type MediaOutput struct {
	ID               uuid.UUID  `json:"id"`
	URL              string     `json:"url"`
	ThumbnailURL     *string    `json:"thumbnail_url,omitempty"`
	OriginalFilename string     `json:"original_filename"`
	MimeType         string     `json:"mime_type"`
	SizeBytes        int64      `json:"size_bytes"`
	AltText          *string    `json:"alt_text,omitempty"`
	Tags             []string   `json:"tags,omitempty"`
	Width            int        `json:"width,omitempty"`
	Height           int        `json:"height,omitempty"`
	PageCount        int        `json:"page_count,omitempty"`
	UploaderID       *uuid.UUID `json:"uploader_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// MediaUploader validates and stores a new file plus its metadata row.
type MediaUploader interface {
	UploadMedia(ctx context.Context, in UploadMediaInput) (MediaOutput, error)
}
type UploadMediaInput struct {
	OriginalFilename string
	Data             []byte
	AltText          *string
	Tags             []string
	UploaderID       *uuid.UUID
}

// MediaLister returns a gallery page, newest first.
type MediaLister interface {
	ListMedias(ctx context.Context, in ListMediasInput) (ListMediasOutput, error)
}
type ListMediasInput struct {
	Search string
	Limit  int
	Cursor string
}
type ListMediasOutput struct {
	Items []MediaOutput `json:"items"`
	// NextCursor is empty on the last page.
	NextCursor string `json:"next_cursor,omitempty"`
}

// MediaGetter retrieves one media record.
type MediaGetter interface {
	GetMedia(ctx context.Context, id uuid.UUID) (MediaOutput, error)
}

// MediaUpdater edits the mutable fields of a media record.
type MediaUpdater interface {
	UpdateMedia(ctx context.Context, in UpdateMediaInput) (MediaOutput, error)
}
type UpdateMediaInput struct {
	ID uuid.UUID
	// nil means "leave unchanged"
	AltText *string
	Tags    *[]string
}

// MediaDeleter deletes a media record and its stored objects.
type MediaDeleter interface {
	DeleteMedia(ctx context.Context, id uuid.UUID) error
}

// ThumbnailGenerator produces and records a thumbnail for an image media.
type ThumbnailGenerator interface {
	GenerateThumbnail(ctx context.Context, id uuid.UUID) error
}

// OrphanSweeper removes stored objects no metadata row references anymore.
type OrphanSweeper interface {
	SweepOrphans(ctx context.Context) error
}

// --- auth ---

// UserOutput is the session-owning user as rendered to clients.
type UserOutput struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
}

// SessionOutput is a freshly issued session.
type SessionOutput struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      UserOutput `json:"user"`
}

// MagicLinkRequester emails a one-time sign-in link.
type MagicLinkRequester interface {
	RequestMagicLink(ctx context.Context, email string) error
}

// MagicLinkVerifier consumes a magic-link token and issues a session.
type MagicLinkVerifier interface {
	VerifyMagicLink(ctx context.Context, token string) (SessionOutput, error)
}

// OAuthStarter returns the provider authorize URL for a fresh state.
type OAuthStarter interface {
	StartOAuth(ctx context.Context, provider string) (string, error)
}

// OAuthCompleter finishes the authorization-code flow and issues a session.
type OAuthCompleter interface {
	CompleteOAuth(ctx context.Context, provider, code, state string) (SessionOutput, error)
}

// SessionGetter resolves the signed-in user for UI rendering.
type SessionGetter interface {
	GetSession(ctx context.Context, userID uuid.UUID) (UserOutput, error)
}

// SignOuter revokes a session and notifies its subscribers.
type SignOuter interface {
	SignOut(ctx context.Context, sid string) error
}
