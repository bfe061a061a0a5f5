// Package focussessions provides the PostgreSQL-backed repository for the
// append-only focus-session log and its day-bucketed aggregation.
package focussessions

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/avolkov/focusboard/internal/dbx"
	"github.com/avolkov/focusboard/internal/server/models"
)

// PostgresRepository implements focus-session storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create appends a session to the log and returns the full record.
func (r *PostgresRepository) Create(ctx context.Context, session *models.FocusSession) (*models.FocusSession, error) {
	query := `
		INSERT INTO focus_sessions (id, user_id, duration, date)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		session.ID, session.UserID, session.Duration, session.Date).Scan(&session.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return session, nil
}

// SumDurationByDay groups the user's sessions on or after the given date
// into calendar-day buckets of summed duration, oldest first. Days without
// sessions produce no bucket.
func (r *PostgresRepository) SumDurationByDay(ctx context.Context, userID string, since time.Time) ([]*models.FocusBucket, error) {
	builder := squirrel.
		Select("date", "SUM(duration)").
		From("focus_sessions").
		Where(squirrel.Eq{"user_id": userID}).
		Where("date >= ?", since).
		GroupBy("date").
		OrderBy("date").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query focus buckets: %w", err)
	}
	defer rows.Close()

	var result []*models.FocusBucket
	for rows.Next() {
		var b models.FocusBucket
		if err := rows.Scan(&b.Date, &b.Duration); err != nil {
			return nil, fmt.Errorf("failed to scan bucket: %w", err)
		}
		result = append(result, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
