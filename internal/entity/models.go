package entity

import "time"

// UserRole defines the access level of a user
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleRegular UserRole = "regular"
)

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleRegular
}

// User represents an authenticated member of the sales team
type User struct {
	ID          string
	Email       string
	Name        string
	AvatarURL   string
	GoogleID    string
	Role        UserRole
	CreatedAt   time.Time
	LastLoginAt time.Time
}

// Session represents an authenticated session, created either by the
// dashboard OAuth flow (cookie) or the extension token exchange (bearer)
type Session struct {
	ID             string
	UserID         string
	Token          string
	ExpiresAt      time.Time
	CreatedAt      time.Time
	LastActivityAt time.Time
}

// TokenUsage is a single metered generation call
type TokenUsage struct {
	ID               string
	UserID           string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	EstimatedCost    float64
	RequestType      string
	CreatedAt        time.Time
}
