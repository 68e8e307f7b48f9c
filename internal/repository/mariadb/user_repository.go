package mariadb

import (
	"context"
	"database/sql"
	"log"

	"mediavault/internal/model"
	"mediavault/internal/port"
	"mediavault/internal/uuid"
)

type UserRepository struct {
	db *sql.DB
}

// compile-time check: *UserRepository must satisfy port.UserRepository
var _ port.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "id, email, display_name, avatar_url, provider, created_at, last_login_at"

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	log.Printf("creating database record for user %s...", user.Email)

	const query = `
      INSERT INTO users
        (id, email, display_name, avatar_url, provider, last_login_at)
      VALUES (?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.DisplayName,
		user.AvatarURL, user.Provider, user.LastLoginAt,
	)
	return err
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	log.Printf("updating database record for user #%s...", user.ID)

	const query = `
      UPDATE users
      SET
        display_name  = ?,
        avatar_url    = ?,
        last_login_at = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		user.DisplayName,
		user.AvatarURL,
		user.LastLoginAt,
		user.ID, // WHERE clause
	)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.getBy(ctx, "id = ?", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getBy(ctx, "email = ?", email)
}

func (r *UserRepository) getBy(ctx context.Context, cond string, arg any) (*model.User, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE "+cond, arg)

	var user model.User
	if err := row.Scan(
		&user.ID, &user.Email, &user.DisplayName,
		&user.AvatarURL, &user.Provider,
		&user.CreatedAt, &user.LastLoginAt,
	); err != nil {
		return nil, err
	}

	return &user, nil
}
