package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/avolkov/focusboard/internal/dbx"
	"github.com/avolkov/focusboard/internal/server/models"
	"github.com/avolkov/focusboard/internal/server/repositories/focussessions"
	"github.com/avolkov/focusboard/internal/server/repositories/notes"
	"github.com/avolkov/focusboard/internal/server/repositories/refreshtokens"
	"github.com/avolkov/focusboard/internal/server/repositories/tasks"
	"github.com/avolkov/focusboard/internal/server/repositories/users"
)

var errUnexpectedCall = errors.New("unexpected repository call")

// fakeRepoManager vends the fake repositories below regardless of the DBTX
// it is handed, so service logic can be exercised without a database.
type fakeRepoManager struct {
	users    users.Repository
	refresh  refreshtokens.Repository
	tasks    tasks.Repository
	notes    notes.Repository
	sessions focussessions.Repository
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return m.users }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository {
	return m.refresh
}
func (m *fakeRepoManager) Tasks(dbx.DBTX) tasks.Repository { return m.tasks }
func (m *fakeRepoManager) Notes(dbx.DBTX) notes.Repository { return m.notes }
func (m *fakeRepoManager) FocusSessions(dbx.DBTX) focussessions.Repository {
	return m.sessions
}

type fakeUserRepo struct {
	createFn        func(ctx context.Context, user *models.User) (*models.User, error)
	getByIDFn       func(ctx context.Context, id string) (*models.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	updateProfileFn func(ctx context.Context, id string, name, avatar *string) (*models.User, error)
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if r.createFn == nil {
		return nil, errUnexpectedCall
	}
	return r.createFn(ctx, user)
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if r.getByIDFn == nil {
		return nil, errUnexpectedCall
	}
	return r.getByIDFn(ctx, id)
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if r.getByEmailFn == nil {
		return nil, errUnexpectedCall
	}
	return r.getByEmailFn(ctx, email)
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id string, name, avatar *string) (*models.User, error) {
	if r.updateProfileFn == nil {
		return nil, errUnexpectedCall
	}
	return r.updateProfileFn(ctx, id, name, avatar)
}

type fakeRefreshTokenRepo struct {
	createFn func(ctx context.Context, userID, token string, validity time.Duration) error
	findFn   func(ctx context.Context, token string) (*models.RefreshToken, error)
	deleteFn func(ctx context.Context, token string) error
}

func (r *fakeRefreshTokenRepo) Create(ctx context.Context, userID, token string, validity time.Duration) error {
	if r.createFn == nil {
		return errUnexpectedCall
	}
	return r.createFn(ctx, userID, token, validity)
}

func (r *fakeRefreshTokenRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if r.findFn == nil {
		return nil, errUnexpectedCall
	}
	return r.findFn(ctx, token)
}

func (r *fakeRefreshTokenRepo) Delete(ctx context.Context, token string) error {
	if r.deleteFn == nil {
		return errUnexpectedCall
	}
	return r.deleteFn(ctx, token)
}

type fakeTaskRepo struct {
	createFn            func(ctx context.Context, task *models.Task) (*models.Task, error)
	getOneFn            func(ctx context.Context, userID, id string) (*models.Task, error)
	listAllFn           func(ctx context.Context, userID string) ([]*models.Task, error)
	updateFn            func(ctx context.Context, userID, id string, upd *models.TaskUpdate) (*models.Task, error)
	deleteFn            func(ctx context.Context, userID, id string) error
	countCreatedByDayFn func(ctx context.Context, userID string, since time.Time) ([]*models.TaskCountBucket, error)
	countCompletedFn    func(ctx context.Context, userID string, since time.Time) ([]*models.TaskCountBucket, error)
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if r.createFn == nil {
		return nil, errUnexpectedCall
	}
	return r.createFn(ctx, task)
}

func (r *fakeTaskRepo) GetOne(ctx context.Context, userID, id string) (*models.Task, error) {
	if r.getOneFn == nil {
		return nil, errUnexpectedCall
	}
	return r.getOneFn(ctx, userID, id)
}

func (r *fakeTaskRepo) ListAll(ctx context.Context, userID string) ([]*models.Task, error) {
	if r.listAllFn == nil {
		return nil, errUnexpectedCall
	}
	return r.listAllFn(ctx, userID)
}

func (r *fakeTaskRepo) Update(ctx context.Context, userID, id string, upd *models.TaskUpdate) (*models.Task, error) {
	if r.updateFn == nil {
		return nil, errUnexpectedCall
	}
	return r.updateFn(ctx, userID, id, upd)
}

func (r *fakeTaskRepo) Delete(ctx context.Context, userID, id string) error {
	if r.deleteFn == nil {
		return errUnexpectedCall
	}
	return r.deleteFn(ctx, userID, id)
}

func (r *fakeTaskRepo) CountCreatedByDay(ctx context.Context, userID string, since time.Time) ([]*models.TaskCountBucket, error) {
	if r.countCreatedByDayFn == nil {
		return nil, errUnexpectedCall
	}
	return r.countCreatedByDayFn(ctx, userID, since)
}

func (r *fakeTaskRepo) CountCompletedByDay(ctx context.Context, userID string, since time.Time) ([]*models.TaskCountBucket, error) {
	if r.countCompletedFn == nil {
		return nil, errUnexpectedCall
	}
	return r.countCompletedFn(ctx, userID, since)
}

type fakeNoteRepo struct {
	createFn  func(ctx context.Context, note *models.Note) (*models.Note, error)
	listAllFn func(ctx context.Context, userID string) ([]*models.Note, error)
	deleteFn  func(ctx context.Context, userID, id string) error
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	if r.createFn == nil {
		return nil, errUnexpectedCall
	}
	return r.createFn(ctx, note)
}

func (r *fakeNoteRepo) ListAll(ctx context.Context, userID string) ([]*models.Note, error) {
	if r.listAllFn == nil {
		return nil, errUnexpectedCall
	}
	return r.listAllFn(ctx, userID)
}

func (r *fakeNoteRepo) Delete(ctx context.Context, userID, id string) error {
	if r.deleteFn == nil {
		return errUnexpectedCall
	}
	return r.deleteFn(ctx, userID, id)
}

type fakeFocusSessionRepo struct {
	createFn           func(ctx context.Context, session *models.FocusSession) (*models.FocusSession, error)
	sumDurationByDayFn func(ctx context.Context, userID string, since time.Time) ([]*models.FocusBucket, error)
}

func (r *fakeFocusSessionRepo) Create(ctx context.Context, session *models.FocusSession) (*models.FocusSession, error) {
	if r.createFn == nil {
		return nil, errUnexpectedCall
	}
	return r.createFn(ctx, session)
}

func (r *fakeFocusSessionRepo) SumDurationByDay(ctx context.Context, userID string, since time.Time) ([]*models.FocusBucket, error) {
	if r.sumDurationByDayFn == nil {
		return nil, errUnexpectedCall
	}
	return r.sumDurationByDayFn(ctx, userID, since)
}
