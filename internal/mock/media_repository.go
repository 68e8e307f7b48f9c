package mock

import (
	"context"

	"mediavault/internal/model"
	"mediavault/internal/port"
	"mediavault/internal/uuid"
)

// MockMediaRepo implements repository operations for tests.
type MockMediaRepo struct {
	MediaRecord *model.Media
	ListOut     []model.Media
	OwnsOut     bool

	// captured inputs
	Created    *model.Media
	Updated    *model.Media
	DeletedID  uuid.UUID
	ListFilter port.ListMediasFilter
	OwnedKey   string

	// errors
	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error
	ListErr   error
	OwnsErr   error

	// call flags
	CreateCalled bool
	UpdateCalled bool
	DeleteCalled bool
	ListCalled   bool
	OwnsCalled   bool
}

func (m *MockMediaRepo) Create(ctx context.Context, media *model.Media) error {
	m.CreateCalled = true
	m.Created = media
	return m.CreateErr
}

func (m *MockMediaRepo) Update(ctx context.Context, media *model.Media) error {
	m.UpdateCalled = true
	m.Updated = media
	return m.UpdateErr
}

func (m *MockMediaRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Media, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.MediaRecord, nil
}

func (m *MockMediaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalled = true
	m.DeletedID = id
	return m.DeleteErr
}

func (m *MockMediaRepo) List(ctx context.Context, filter port.ListMediasFilter) ([]model.Media, error) {
	m.ListCalled = true
	m.ListFilter = filter
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

func (m *MockMediaRepo) OwnsObjectKey(ctx context.Context, key string) (bool, error) {
	m.OwnsCalled = true
	m.OwnedKey = key
	if m.OwnsErr != nil {
		return false, m.OwnsErr
	}
	return m.OwnsOut, nil
}
