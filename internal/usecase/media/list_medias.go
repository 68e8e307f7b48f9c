package media

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"mediavault/internal/port"
	"mediavault/internal/uuid"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

type mediaListerSrv struct {
	repo   port.MediaRepository
	strg   port.Storage
	bucket string
}

// compile-time check: *mediaListerSrv must satisfy port.MediaLister
var _ port.MediaLister = (*mediaListerSrv)(nil)

// NewMediaLister constructs a MediaLister implementation.
func NewMediaLister(repo port.MediaRepository, strg port.Storage, bucket string) port.MediaLister {
	return &mediaListerSrv{repo, strg, bucket}
}

// ListMedias returns one gallery page, newest first, optionally filtered by a
// case-insensitive substring over filename, alt text and tags.
func (s *mediaListerSrv) ListMedias(ctx context.Context, in port.ListMediasInput) (port.ListMediasOutput, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	filter := port.ListMediasFilter{
		Search: strings.TrimSpace(in.Search),
		// fetch one extra row to know whether another page exists
		Limit: limit + 1,
	}
	if in.Cursor != "" {
		cur, err := decodeCursor(in.Cursor)
		if err != nil {
			return port.ListMediasOutput{}, err
		}
		filter.Before = cur
	}

	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return port.ListMediasOutput{}, err
	}

	out := port.ListMediasOutput{Items: make([]port.MediaOutput, 0, limit)}
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		out.NextCursor = encodeCursor(port.ListCursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	for i := range rows {
		out.Items = append(out.Items, toMediaOutput(&rows[i], s.strg, s.bucket))
	}

	return out, nil
}

type cursorPayload struct {
	T  int64  `json:"t"`
	ID string `json:"id"`
}

func encodeCursor(c port.ListCursor) string {
	raw, _ := json.Marshal(cursorPayload{T: c.CreatedAt.UTC().UnixNano(), ID: c.ID.String()})
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeCursor(s string) (*port.ListCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCursor, err)
	}
	var p cursorPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCursor, err)
	}
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCursor, err)
	}
	return &port.ListCursor{CreatedAt: time.Unix(0, p.T).UTC(), ID: id}, nil
}
