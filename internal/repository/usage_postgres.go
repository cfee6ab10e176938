package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/salescraft/outreach-backend/internal/entity"
)

// UsageRepository appends token usage rows and aggregates them for the
// admin dashboard. Inserts are independent single rows, safe under
// concurrent writers without coordination.
type UsageRepository interface {
	Append(ctx context.Context, usage *entity.TokenUsage) error
	Aggregate(ctx context.Context, period entity.UsagePeriod) (*entity.UsageReport, error)
}

var _ UsageRepository = &UsagePostgres{}

// UsagePostgres implements UsageRepository using PostgreSQL
type UsagePostgres struct {
	db *pgxpool.Pool
}

func NewUsagePostgres(db *pgxpool.Pool) *UsagePostgres {
	return &UsagePostgres{db: db}
}

func (r *UsagePostgres) Append(ctx context.Context, usage *entity.TokenUsage) error {
	userID, err := uuid.Parse(usage.UserID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO token_usage (id, user_id, model, prompt_tokens, completion_tokens, total_tokens, estimated_cost, request_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.New(), userID, usage.Model,
		usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens,
		usage.EstimatedCost, usage.RequestType,
	)
	if err != nil {
		return fmt.Errorf("append token usage: %w", err)
	}
	return nil
}

func periodCutoff(period entity.UsagePeriod) *time.Time {
	var d time.Duration
	switch period {
	case entity.Period7Days:
		d = 7 * 24 * time.Hour
	case entity.Period30Days:
		d = 30 * 24 * time.Hour
	default:
		return nil
	}
	t := time.Now().Add(-d)
	return &t
}

func (r *UsagePostgres) Aggregate(ctx context.Context, period entity.UsagePeriod) (*entity.UsageReport, error) {
	cutoff := periodCutoff(period)

	// The join filter lives in the JOIN condition, not the WHERE clause,
	// so users without usage in the window still appear with zeroes.
	query := `SELECT
			u.id,
			u.name,
			u.email,
			COUNT(tu.id),
			COALESCE(SUM(tu.prompt_tokens), 0),
			COALESCE(SUM(tu.completion_tokens), 0),
			COALESCE(SUM(tu.total_tokens), 0),
			COALESCE(SUM(tu.estimated_cost), 0),
			MAX(tu.created_at)
		FROM users u
		LEFT JOIN token_usage tu ON tu.user_id = u.id`

	args := []any{}
	if cutoff != nil {
		query += ` AND tu.created_at >= $1`
		args = append(args, *cutoff)
	}
	query += ` GROUP BY u.id ORDER BY COALESCE(SUM(tu.estimated_cost), 0) DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage: %w", err)
	}
	defer rows.Close()

	report := &entity.UsageReport{Period: period}
	for rows.Next() {
		var u entity.UserUsage
		var id uuid.UUID
		var lastUsed *time.Time
		if err := rows.Scan(&id, &u.Name, &u.Email, &u.TotalRequests,
			&u.PromptTokens, &u.CompletionTokens, &u.TotalTokens, &u.TotalCost, &lastUsed); err != nil {
			return nil, fmt.Errorf("scan usage row: %w", err)
		}
		u.UserID = id.String()
		if lastUsed != nil {
			s := lastUsed.UTC().Format(time.RFC3339)
			u.LastUsed = &s
		}
		report.Users = append(report.Users, u)

		report.Totals.TotalRequests += u.TotalRequests
		report.Totals.PromptTokens += u.PromptTokens
		report.Totals.CompletionTokens += u.CompletionTokens
		report.Totals.TotalTokens += u.TotalTokens
		report.Totals.TotalCost += u.TotalCost
	}
	return report, rows.Err()
}
