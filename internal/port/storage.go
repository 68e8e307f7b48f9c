package port

import (
	"context"
	"io"
	"time"
)

// FileInfo represents metadata about a stored file.
type FileInfo struct {
	SizeBytes   int64
	ContentType string
}

// ObjectInfo is a single entry of a bucket listing.
type ObjectInfo struct {
	Key          string
	LastModified time.Time
}

// Storage defines file storage operations.
type Storage interface {
	InitBucket(bucket string) error
	FileExists(ctx context.Context, bucket, fileKey string) (bool, error)
	StatFile(ctx context.Context, bucket, fileKey string) (FileInfo, error)
	SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error
	GetFile(ctx context.Context, bucket, fileKey string) (io.ReadSeekCloser, error)
	RemoveFile(ctx context.Context, bucket, fileKey string) error
	// PublicURL returns the stable, unauthenticated URL of an object.
	PublicURL(bucket, fileKey string) string
	// ListFiles streams every object under the given prefix.
	ListFiles(ctx context.Context, bucket, prefix string) <-chan ObjectInfo
}
