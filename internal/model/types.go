package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Tags is a set of free-form labels stored as a JSON column.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshal Tags: %w", err)
	}
	return b, nil
}
func (t *Tags) Scan(src interface{}) error {
	if src == nil {
		*t = nil
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Tags.Scan: expected []byte, got %T", src)
	}
	if err := json.Unmarshal(data, t); err != nil {
		return fmt.Errorf("unmarshal Tags: %w", err)
	}
	return nil
}

// Metadata holds intrinsic properties extracted from the file at upload time.
type Metadata struct {
	// image-specific
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// pdf-specific
	PageCount int `json:"page_count,omitempty"`
}

func (m Metadata) Value() (driver.Value, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal Metadata: %w", err)
	}
	return b, nil
}
func (m *Metadata) Scan(src interface{}) error {
	if src == nil {
		*m = Metadata{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Metadata.Scan: expected []byte, got %T", src)
	}
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("unmarshal Metadata: %w", err)
	}
	return nil
}
