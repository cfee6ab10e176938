package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/salescraft/outreach-backend/internal/entity"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	UpdateProfile(ctx context.Context, id, name, avatarURL, googleID string) error
	UpdateRole(ctx context.Context, id string, role entity.UserRole) (*entity.User, error)
	TouchLogin(ctx context.Context, id, googleID string) error
	Delete(ctx context.Context, id string) error
}

var _ UserRepository = &UserPostgres{}

// UserPostgres implements UserRepository using PostgreSQL
type UserPostgres struct {
	db *pgxpool.Pool
}

func NewUserPostgres(db *pgxpool.Pool) *UserPostgres {
	return &UserPostgres{db: db}
}

const userColumns = `id, email, name, avatar_url, google_id, role, created_at, last_login_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var id uuid.UUID
	var role string
	if err := row.Scan(&id, &u.Email, &u.Name, &u.AvatarURL, &u.GoogleID, &role, &u.CreatedAt, &u.LastLoginAt); err != nil {
		return nil, err
	}
	u.ID = id.String()
	u.Role = entity.UserRole(role)
	return &u, nil
}

func (r *UserPostgres) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

func (r *UserPostgres) GetByID(ctx context.Context, id string) (*entity.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

func (r *UserPostgres) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *UserPostgres) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	now := time.Now()
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (id, email, name, avatar_url, google_id, role, created_at, last_login_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		 RETURNING `+userColumns,
		userID, user.Email, user.Name, user.AvatarURL, user.GoogleID, string(user.Role), now,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (r *UserPostgres) UpdateProfile(ctx context.Context, id, name, avatarURL, googleID string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`UPDATE users SET name = $2, avatar_url = $3, google_id = $4, last_login_at = now() WHERE id = $1`,
		userID, name, avatarURL, googleID,
	)
	if err != nil {
		return fmt.Errorf("update user profile: %w", err)
	}
	return nil
}

func (r *UserPostgres) UpdateRole(ctx context.Context, id string, role entity.UserRole) (*entity.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	row := r.db.QueryRow(ctx,
		`UPDATE users SET role = $2 WHERE id = $1 RETURNING `+userColumns,
		userID, string(role),
	)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user role: %w", err)
	}
	return user, nil
}

// TouchLogin refreshes last_login_at and backfills the google id when it
// was not stored yet.
func (r *UserPostgres) TouchLogin(ctx context.Context, id, googleID string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`UPDATE users SET last_login_at = now(), google_id = COALESCE(NULLIF(google_id, ''), $2) WHERE id = $1`,
		userID, googleID,
	)
	if err != nil {
		return fmt.Errorf("touch user login: %w", err)
	}
	return nil
}

func (r *UserPostgres) Delete(ctx context.Context, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}
