package mock

import (
	"context"

	"mediavault/internal/model"
	"mediavault/internal/uuid"
)

// MockUserRepo implements user repository operations for tests.
type MockUserRepo struct {
	UserRecord *model.User

	// captured inputs
	Created *model.User
	Updated *model.User

	// errors
	GetByIDErr    error
	GetByEmailErr error
	CreateErr     error
	UpdateErr     error

	// call flags
	CreateCalled bool
	UpdateCalled bool
}

func (m *MockUserRepo) Create(ctx context.Context, user *model.User) error {
	m.CreateCalled = true
	m.Created = user
	return m.CreateErr
}

func (m *MockUserRepo) Update(ctx context.Context, user *model.User) error {
	m.UpdateCalled = true
	m.Updated = user
	return m.UpdateErr
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if m.GetByIDErr != nil {
		return nil, m.GetByIDErr
	}
	return m.UserRecord, nil
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.GetByEmailErr != nil {
		return nil, m.GetByEmailErr
	}
	return m.UserRecord, nil
}
