// Package tasks provides the PostgreSQL-backed repository for tasks,
// including the day-bucketed aggregation queries behind the activity summary.
package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/avolkov/focusboard/internal/common"
	"github.com/avolkov/focusboard/internal/dbx"
	"github.com/avolkov/focusboard/internal/server/models"
)

// PostgresRepository implements task storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new task for its owner and returns the full record.
func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query := `
		INSERT INTO tasks (id, user_id, title, description, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING completed, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Description, task.Date).
		Scan(&task.Completed, &task.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return task, nil
}

// GetOne returns the task only if it exists and belongs to userID. Both
// "no such id" and "owned by someone else" come back as common.ErrorNotFound.
func (r *PostgresRepository) GetOne(ctx context.Context, userID, id string) (*models.Task, error) {
	query := `
		SELECT id, user_id, title, description, date, completed, created_at
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`
	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.Date, &task.Completed, &task.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return task, nil
}

// ListAll returns all tasks owned by userID, most recent first.
func (r *PostgresRepository) ListAll(ctx context.Context, userID string) ([]*models.Task, error) {
	query := `
		SELECT id, user_id, title, description, date, completed, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var result []*models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(
			&task.ID, &task.UserID, &task.Title, &task.Description,
			&task.Date, &task.Completed, &task.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		result = append(result, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update applies the supplied fields in a single statement whose predicate
// matches both id and owner, then returns the post-update record. Zero rows
// affected means the task does not exist for this user: common.ErrorNotFound.
// The single filtered UPDATE is what keeps the check and the write atomic.
func (r *PostgresRepository) Update(ctx context.Context, userID, id string, upd *models.TaskUpdate) (*models.Task, error) {
	builder := squirrel.Update("tasks").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING id, user_id, title, description, date, completed, created_at").
		PlaceholderFormat(squirrel.Dollar)

	if upd.Title != nil {
		builder = builder.Set("title", *upd.Title)
	}
	if upd.Description != nil {
		builder = builder.Set("description", *upd.Description)
	}
	if upd.Completed != nil {
		builder = builder.Set("completed", *upd.Completed)
	}
	if upd.DateSet {
		builder = builder.Set("date", upd.Date)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	task := &models.Task{}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.Date, &task.Completed, &task.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return task, nil
}

// Delete removes the task in a single statement filtered on (id, user_id).
// Zero rows removed maps to common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// CountCreatedByDay groups the user's tasks created since the given instant
// into UTC calendar-day buckets. Days without tasks produce no bucket.
func (r *PostgresRepository) CountCreatedByDay(ctx context.Context, userID string, since time.Time) ([]*models.TaskCountBucket, error) {
	return r.countByDay(ctx, userID, since, false)
}

// CountCompletedByDay is CountCreatedByDay restricted to completed tasks.
func (r *PostgresRepository) CountCompletedByDay(ctx context.Context, userID string, since time.Time) ([]*models.TaskCountBucket, error) {
	return r.countByDay(ctx, userID, since, true)
}

func (r *PostgresRepository) countByDay(ctx context.Context, userID string, since time.Time, completedOnly bool) ([]*models.TaskCountBucket, error) {
	builder := squirrel.
		Select("(created_at AT TIME ZONE 'UTC')::date AS day", "COUNT(*)").
		From("tasks").
		Where(squirrel.Eq{"user_id": userID}).
		Where("created_at >= ?", since).
		GroupBy("day").
		OrderBy("day").
		PlaceholderFormat(squirrel.Dollar)

	if completedOnly {
		builder = builder.Where(squirrel.Eq{"completed": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query task buckets: %w", err)
	}
	defer rows.Close()

	var result []*models.TaskCountBucket
	for rows.Next() {
		var b models.TaskCountBucket
		if err := rows.Scan(&b.Date, &b.Count); err != nil {
			return nil, fmt.Errorf("failed to scan bucket: %w", err)
		}
		result = append(result, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
