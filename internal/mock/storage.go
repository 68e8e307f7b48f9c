package mock

import (
	"bytes"
	"context"
	"io"

	"mediavault/internal/port"
)

// Storage implements the storage interface for tests.
type Storage struct {
	// stored values
	StatInfoOut port.FileInfo
	GetOut      io.ReadSeeker
	ExistsOut   bool
	ListOut     []port.ObjectInfo
	BaseURL     string

	// captured inputs
	ObjectKey   string
	SavedKeys   []string
	RemovedKeys []string

	// errors
	InitBucketErr error
	StatErr       error
	RemoveErr     error
	GetErr        error
	SaveErr       error
	FileExistsErr error

	// call flags
	InitBucketCalled bool
	StatCalled       bool
	RemoveCalled     bool
	GetCalled        bool
	SaveCalled       bool
	FileExistsCalled bool
	ListCalled       bool
}

func (m *Storage) InitBucket(bucket string) error {
	m.InitBucketCalled = true
	return m.InitBucketErr
}

func (m *Storage) FileExists(ctx context.Context, bucket, fileKey string) (bool, error) {
	m.FileExistsCalled = true
	if m.FileExistsErr != nil {
		return false, m.FileExistsErr
	}
	return m.ExistsOut, nil
}

func (m *Storage) StatFile(ctx context.Context, bucket, fileKey string) (port.FileInfo, error) {
	m.StatCalled = true
	if m.StatErr != nil {
		return port.FileInfo{}, m.StatErr
	}
	return m.StatInfoOut, nil
}

func (m *Storage) SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	m.SaveCalled = true
	m.ObjectKey = fileKey
	m.SavedKeys = append(m.SavedKeys, fileKey)
	return m.SaveErr
}

func (m *Storage) GetFile(ctx context.Context, bucket, fileKey string) (io.ReadSeekCloser, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.GetOut != nil {
		return noopRSC{m.GetOut}, nil
	}
	return noopRSC{bytes.NewReader([]byte("dummy"))}, nil
}

func (m *Storage) RemoveFile(ctx context.Context, bucket, fileKey string) error {
	m.RemoveCalled = true
	m.RemovedKeys = append(m.RemovedKeys, fileKey)
	return m.RemoveErr
}

func (m *Storage) PublicURL(bucket, fileKey string) string {
	base := m.BaseURL
	if base == "" {
		base = "https://example.com"
	}
	return base + "/" + bucket + "/" + fileKey
}

func (m *Storage) ListFiles(ctx context.Context, bucket, prefix string) <-chan port.ObjectInfo {
	m.ListCalled = true
	ch := make(chan port.ObjectInfo, len(m.ListOut))
	for _, o := range m.ListOut {
		ch <- o
	}
	close(ch)
	return ch
}
