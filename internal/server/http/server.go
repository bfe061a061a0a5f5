// Package http provides the JSON-over-HTTP API for Focusboard: routing,
// identity middleware and the translation of service results and errors
// into wire responses.
package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/avolkov/focusboard/internal/logging"
	"github.com/avolkov/focusboard/internal/metrics"
	"github.com/avolkov/focusboard/internal/server/models"
	"github.com/avolkov/focusboard/internal/server/services"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service interfaces consumed by the handlers. Declared here, implemented by
// the services package; tests substitute fakes.

type userService interface {
	Signup(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, name, avatar *string) (*models.User, error)
}

type taskService interface {
	Create(ctx context.Context, userID, title, description, date string) (*models.Task, error)
	GetOne(ctx context.Context, userID, id string) (*models.Task, error)
	ListAll(ctx context.Context, userID string) ([]*models.Task, error)
	Update(ctx context.Context, userID, id string, in *services.TaskUpdateInput) (*models.Task, error)
	Delete(ctx context.Context, userID, id string) error
}

type noteService interface {
	Create(ctx context.Context, userID, content, color string) (*models.Note, error)
	ListAll(ctx context.Context, userID string) ([]*models.Note, error)
	Delete(ctx context.Context, userID, id string) error
}

type focusService interface {
	Record(ctx context.Context, userID string, duration int) (*models.FocusSession, error)
	Summary(ctx context.Context, userID string) (*services.Summary, error)
	Today(ctx context.Context, userID string) (*services.TodayStats, error)
}

// Server wires the echo router to the service layer.
type Server struct {
	echo      *echo.Echo
	address   string
	logger    logging.Logger
	users     userService
	tasks     taskService
	notes     noteService
	focus     focusService
	jwtSecret []byte
}

// NewServer constructs the HTTP server and registers all routes.
func NewServer(address string, l logging.Logger, us userService, ts taskService, ns noteService, fs focusService, secretKey string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:      e,
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		tasks:     ts,
		notes:     ns,
		focus:     fs,
		jwtSecret: []byte(secretKey),
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(s.requestLogger)
	e.Use(metricsMiddleware)

	s.registerRoutes()

	return s
}

// requestLogger logs one line per request with method, path, status and
// duration.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		s.logger.Info(c.Request().Context(), "http request",
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
			"status", c.Response().Status,
			"duration", time.Since(start),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		)
		return err
	}
}

// metricsMiddleware records request counts and latency by route.
func metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		method := c.Request().Method
		route := c.Path()
		metrics.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
		metrics.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	s.echo.POST("/auth/signup", s.handleSignup)
	s.echo.POST("/auth/login", s.handleLogin)
	s.echo.POST("/auth/refresh", s.handleRefresh)

	authed := s.echo.Group("", s.requireAuth)

	authed.GET("/tasks", s.handleListTasks)
	authed.POST("/tasks", s.handleCreateTask)
	authed.GET("/tasks/:id", s.handleGetTask)
	authed.PUT("/tasks/:id", s.handleUpdateTask)
	authed.DELETE("/tasks/:id", s.handleDeleteTask)

	authed.GET("/notes", s.handleListNotes)
	authed.POST("/notes", s.handleCreateNote)
	authed.DELETE("/notes/:id", s.handleDeleteNote)

	authed.GET("/focus", s.handleSummary)
	authed.POST("/focus", s.handleRecordFocus)
	authed.GET("/focus/today", s.handleToday)

	authed.GET("/user", s.handleGetProfile)
	authed.PUT("/user", s.handleUpdateProfile)
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Run starts the server and shuts it down gracefully when ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
