package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avolkov/focusboard/internal/common"
	"github.com/avolkov/focusboard/internal/logging"
	"github.com/avolkov/focusboard/internal/server/auth"
	"github.com/avolkov/focusboard/internal/server/models"
	"github.com/avolkov/focusboard/internal/server/services"
)

const testSecret = "test-secret"

var errUnexpectedCall = errors.New("unexpected service call")

type fakeUserService struct {
	signupFn        func(ctx context.Context, email, password string) (*models.User, error)
	loginFn         func(ctx context.Context, email, password string) (*services.TokenPair, error)
	refreshFn       func(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	getByIDFn       func(ctx context.Context, id string) (*models.User, error)
	updateProfileFn func(ctx context.Context, userID string, name, avatar *string) (*models.User, error)
}

func (f *fakeUserService) Signup(ctx context.Context, email, password string) (*models.User, error) {
	if f.signupFn == nil {
		return nil, errUnexpectedCall
	}
	return f.signupFn(ctx, email, password)
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (*services.TokenPair, error) {
	if f.loginFn == nil {
		return nil, errUnexpectedCall
	}
	return f.loginFn(ctx, email, password)
}

func (f *fakeUserService) RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	if f.refreshFn == nil {
		return nil, errUnexpectedCall
	}
	return f.refreshFn(ctx, refreshToken)
}

func (f *fakeUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getByIDFn == nil {
		return &models.User{ID: id, Email: "alice@example.com", Name: "Alice"}, nil
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeUserService) UpdateProfile(ctx context.Context, userID string, name, avatar *string) (*models.User, error) {
	if f.updateProfileFn == nil {
		return nil, errUnexpectedCall
	}
	return f.updateProfileFn(ctx, userID, name, avatar)
}

type fakeTaskService struct {
	createFn  func(ctx context.Context, userID, title, description, date string) (*models.Task, error)
	getOneFn  func(ctx context.Context, userID, id string) (*models.Task, error)
	listAllFn func(ctx context.Context, userID string) ([]*models.Task, error)
	updateFn  func(ctx context.Context, userID, id string, in *services.TaskUpdateInput) (*models.Task, error)
	deleteFn  func(ctx context.Context, userID, id string) error
}

func (f *fakeTaskService) Create(ctx context.Context, userID, title, description, date string) (*models.Task, error) {
	if f.createFn == nil {
		return nil, errUnexpectedCall
	}
	return f.createFn(ctx, userID, title, description, date)
}

func (f *fakeTaskService) GetOne(ctx context.Context, userID, id string) (*models.Task, error) {
	if f.getOneFn == nil {
		return nil, errUnexpectedCall
	}
	return f.getOneFn(ctx, userID, id)
}

func (f *fakeTaskService) ListAll(ctx context.Context, userID string) ([]*models.Task, error) {
	if f.listAllFn == nil {
		return nil, errUnexpectedCall
	}
	return f.listAllFn(ctx, userID)
}

func (f *fakeTaskService) Update(ctx context.Context, userID, id string, in *services.TaskUpdateInput) (*models.Task, error) {
	if f.updateFn == nil {
		return nil, errUnexpectedCall
	}
	return f.updateFn(ctx, userID, id, in)
}

func (f *fakeTaskService) Delete(ctx context.Context, userID, id string) error {
	if f.deleteFn == nil {
		return errUnexpectedCall
	}
	return f.deleteFn(ctx, userID, id)
}

type fakeNoteService struct {
	createFn  func(ctx context.Context, userID, content, color string) (*models.Note, error)
	listAllFn func(ctx context.Context, userID string) ([]*models.Note, error)
	deleteFn  func(ctx context.Context, userID, id string) error
}

func (f *fakeNoteService) Create(ctx context.Context, userID, content, color string) (*models.Note, error) {
	if f.createFn == nil {
		return nil, errUnexpectedCall
	}
	return f.createFn(ctx, userID, content, color)
}

func (f *fakeNoteService) ListAll(ctx context.Context, userID string) ([]*models.Note, error) {
	if f.listAllFn == nil {
		return nil, errUnexpectedCall
	}
	return f.listAllFn(ctx, userID)
}

func (f *fakeNoteService) Delete(ctx context.Context, userID, id string) error {
	if f.deleteFn == nil {
		return errUnexpectedCall
	}
	return f.deleteFn(ctx, userID, id)
}

type fakeFocusService struct {
	recordFn  func(ctx context.Context, userID string, duration int) (*models.FocusSession, error)
	summaryFn func(ctx context.Context, userID string) (*services.Summary, error)
	todayFn   func(ctx context.Context, userID string) (*services.TodayStats, error)
}

func (f *fakeFocusService) Record(ctx context.Context, userID string, duration int) (*models.FocusSession, error) {
	if f.recordFn == nil {
		return nil, errUnexpectedCall
	}
	return f.recordFn(ctx, userID, duration)
}

func (f *fakeFocusService) Summary(ctx context.Context, userID string) (*services.Summary, error) {
	if f.summaryFn == nil {
		return nil, errUnexpectedCall
	}
	return f.summaryFn(ctx, userID)
}

func (f *fakeFocusService) Today(ctx context.Context, userID string) (*services.TodayStats, error) {
	if f.todayFn == nil {
		return nil, errUnexpectedCall
	}
	return f.todayFn(ctx, userID)
}

// testServices bundles the fakes handed to newTestServer. Nil fields get a
// zero-value fake, whose methods reject unexpected calls.
type testServices struct {
	users *fakeUserService
	tasks *fakeTaskService
	notes *fakeNoteService
	focus *fakeFocusService
}

func newTestServer(t *testing.T, svc testServices) *Server {
	t.Helper()
	if svc.users == nil {
		svc.users = &fakeUserService{}
	}
	if svc.tasks == nil {
		svc.tasks = &fakeTaskService{}
	}
	if svc.notes == nil {
		svc.notes = &fakeNoteService{}
	}
	if svc.focus == nil {
		svc.focus = &fakeFocusService{}
	}
	l := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	return NewServer(":0", l, svc.users, svc.tasks, svc.notes, svc.focus, testSecret)
}

// validToken mints an access token the test server will accept.
func validToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, []byte(testSecret), time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return token
}

// doRequest runs a request through the full middleware chain and returns the
// recorder. A non-empty token goes into the Authorization header.
func doRequest(s *Server, method, target, token string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

// notFoundTaskService answers every read and mutation with the sentinel that
// covers both missing and foreign-owned ids.
func notFoundTaskService() *fakeTaskService {
	return &fakeTaskService{
		getOneFn: func(context.Context, string, string) (*models.Task, error) {
			return nil, common.ErrorNotFound
		},
		updateFn: func(context.Context, string, string, *services.TaskUpdateInput) (*models.Task, error) {
			return nil, common.ErrorNotFound
		},
		deleteFn: func(context.Context, string, string) error {
			return common.ErrorNotFound
		},
	}
}

