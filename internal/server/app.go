// Package server initializes and runs the main application server. It opens
// the database, runs migrations, wires services to the HTTP layer and
// handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/avolkov/focusboard/internal/logging"
	"github.com/avolkov/focusboard/internal/metrics"
	"github.com/avolkov/focusboard/internal/server/config"
	fhttp "github.com/avolkov/focusboard/internal/server/http"
	"github.com/avolkov/focusboard/internal/server/repositories/repomanager"
	"github.com/avolkov/focusboard/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
)

// App owns the long-lived server components.
type App struct {
	config       *config.Config
	logger       logging.Logger
	userService  *services.UserService
	taskService  *services.TaskService
	noteService  *services.NoteService
	focusService *services.FocusService
}

// NewApp builds the application: database pool, migrations, repositories
// and services.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	l := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := repomanager.Open(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	metrics.Register(prometheus.DefaultRegisterer)

	return &App{
		config:       cfg,
		logger:       l,
		userService:  services.NewUserService(db, rm, cfg),
		taskService:  services.NewTaskService(db, rm, cfg),
		noteService:  services.NewNoteService(db, rm, cfg),
		focusService: services.NewFocusService(db, rm, cfg),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := fhttp.NewServer(app.config.EndpointAddr, app.logger,
		app.userService, app.taskService, app.noteService, app.focusService,
		app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run starts the HTTP server and blocks until shutdown completes.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
