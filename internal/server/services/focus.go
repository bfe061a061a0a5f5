package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avolkov/focusboard/internal/common"
	"github.com/avolkov/focusboard/internal/server/config"
	"github.com/avolkov/focusboard/internal/server/models"
	"github.com/avolkov/focusboard/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// summaryWindowDays is the length of the trailing activity window: today and
// the six days before it, boundary inclusive on both ends.
const summaryWindowDays = 7

// nominalSessionSeconds is the per-session length used to derive the
// "sessions today" figure from total focus duration (25 minutes). The figure
// is an approximation by design: duration-derived, not a true event count.
const nominalSessionSeconds = 25 * 60

// Summary holds the three parallel per-day series backing the activity view.
// Each series is sparse: days with no matching rows have no bucket.
type Summary struct {
	FocusData      []*models.FocusBucket
	TasksCompleted []*models.TaskCountBucket
	TasksCreated   []*models.TaskCountBucket
}

// TodayStats is the same-day view derived from a Summary by looking up
// today's bucket in each series, treating absence as zero.
type TodayStats struct {
	FocusSeconds   int
	Sessions       int
	TasksCompleted int
}

// FocusService records focus sessions and computes the 7-day activity
// summary. All calendar-day arithmetic is pinned to UTC.
type FocusService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager

	// now is a seam for tests.
	now func() time.Time
}

// NewFocusService constructs a FocusService.
func NewFocusService(db *sql.DB, m repomanager.RepositoryManager, _ *config.Config) *FocusService {
	return &FocusService{db: db, repomanager: m, now: time.Now}
}

// today returns midnight UTC of the current calendar day.
func (s *FocusService) today() time.Time {
	n := s.now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// windowStart returns the first day of the trailing window.
func (s *FocusService) windowStart() time.Time {
	return s.today().AddDate(0, 0, -(summaryWindowDays - 1))
}

// Record validates the duration and appends a session stamped with the
// current UTC calendar date. The log has no update or delete.
func (s *FocusService) Record(ctx context.Context, userID string, duration int) (*models.FocusSession, error) {
	if duration < models.MinFocusDuration {
		return nil, fmt.Errorf("%w: duration must be at least %d seconds", common.ErrorValidation, models.MinFocusDuration)
	}

	session := &models.FocusSession{
		ID:       uuid.NewString(),
		UserID:   userID,
		Duration: duration,
		Date:     s.today(),
	}

	repo := s.repomanager.FocusSessions(s.db)
	rec, err := repo.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("error recording focus session: %w", err)
	}
	return rec, nil
}

// Summary produces the three day-bucketed series over the trailing window.
func (s *FocusService) Summary(ctx context.Context, userID string) (*Summary, error) {
	since := s.windowStart()

	focusRepo := s.repomanager.FocusSessions(s.db)
	taskRepo := s.repomanager.Tasks(s.db)

	focusData, err := focusRepo.SumDurationByDay(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("error aggregating focus sessions: %w", err)
	}
	completed, err := taskRepo.CountCompletedByDay(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("error aggregating completed tasks: %w", err)
	}
	created, err := taskRepo.CountCreatedByDay(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("error aggregating created tasks: %w", err)
	}

	return &Summary{FocusData: focusData, TasksCompleted: completed, TasksCreated: created}, nil
}

// Today derives the same-day stats from the summary series. Absent buckets
// count as zero; an empty series is not an error.
func (s *FocusService) Today(ctx context.Context, userID string) (*TodayStats, error) {
	summary, err := s.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.today()
	stats := &TodayStats{}

	for _, b := range summary.FocusData {
		if sameDay(b.Date, today) {
			stats.FocusSeconds = b.Duration
			break
		}
	}
	for _, b := range summary.TasksCompleted {
		if sameDay(b.Date, today) {
			stats.TasksCompleted = b.Count
			break
		}
	}
	if stats.FocusSeconds > 0 {
		stats.Sessions = stats.FocusSeconds / nominalSessionSeconds
	}

	return stats, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
