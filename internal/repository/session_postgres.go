package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/salescraft/outreach-backend/internal/entity"
)

// SessionRepository defines the interface for auth session persistence
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	GetUserByToken(ctx context.Context, token string) (*entity.User, error)
	TouchActivity(ctx context.Context, token string) error
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

var _ SessionRepository = &SessionPostgres{}

// SessionPostgres implements SessionRepository using PostgreSQL
type SessionPostgres struct {
	db *pgxpool.Pool
}

func NewSessionPostgres(db *pgxpool.Pool) *SessionPostgres {
	return &SessionPostgres{db: db}
}

func (r *SessionPostgres) Create(ctx context.Context, session *entity.Session) error {
	sessionID, err := uuid.Parse(session.ID)
	if err != nil {
		return fmt.Errorf("invalid session ID: %w", err)
	}
	userID, err := uuid.Parse(session.UserID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO sessions (id, user_id, token, expires_at) VALUES ($1, $2, $3, $4)`,
		sessionID, userID, session.Token, session.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// GetUserByToken resolves a cookie or bearer token to its user. Expired
// sessions resolve to ErrSessionNotFound.
func (r *SessionPostgres) GetUserByToken(ctx context.Context, token string) (*entity.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT u.id, u.email, u.name, u.avatar_url, u.google_id, u.role, u.created_at, u.last_login_at
		 FROM sessions s
		 JOIN users u ON u.id = s.user_id
		 WHERE s.token = $1 AND s.expires_at > now()`,
		token,
	)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session user: %w", err)
	}
	return user, nil
}

func (r *SessionPostgres) TouchActivity(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE sessions SET last_activity_at = now() WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("touch session activity: %w", err)
	}
	return nil
}

func (r *SessionPostgres) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired removes sessions past their expiry. Intended for a
// periodic cleanup pass; safe to call concurrently.
func (r *SessionPostgres) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
