package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"clientTaskTracker/internal/config"
	"clientTaskTracker/internal/handlers"
	"clientTaskTracker/internal/logger"
	"clientTaskTracker/internal/middleware"
	"clientTaskTracker/internal/render"
	"clientTaskTracker/internal/repository/task/inmemory"
	"clientTaskTracker/internal/service"
	"clientTaskTracker/internal/session"
	"clientTaskTracker/internal/tui"
	"clientTaskTracker/internal/web"
	"clientTaskTracker/internal/worker"

	"github.com/go-chi/chi/v5"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// App owns one tracker session: its store, form and front-ends live exactly
// as long as the process.
type App struct {
	config     *config.Config
	server     *http.Server
	router     *chi.Mux
	repository service.TaskRepository
	service    *service.TaskService
	session    *session.Session
	locale     render.Locale
	worker     *worker.OverdueWorker
	shutdowns  []func() error
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func() error, 0),
	}
}

func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development, a.config.Logging.File); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.shutdowns = append(a.shutdowns, func() error {
		logger.Info("App: flushing logs")
		logger.Sync()
		return nil
	})

	locale, err := render.NewLocale(a.config.Display.Locale)
	if err != nil {
		return fmt.Errorf("init locale: %w", err)
	}
	a.locale = locale

	a.repository = inmemory.NewTaskStorage()
	if err := a.repository.HealthCheck(ctx); err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	a.service = service.NewTaskService(a.repository)
	a.session = session.New(a.service)

	interval := a.config.Worker.OverdueInterval
	a.worker = worker.NewOverdueWorker(a.service, &interval)

	logger.Info("App: session started", zap.String("locale", locale.Tag()))
	return nil
}

// Router wires the page at / and the JSON API at /api.
func (a *App) Router() http.Handler {
	if a.router != nil {
		return a.router
	}

	taskHandler := handlers.NewTaskHandler(a.service)
	page := web.NewHandler(a.service, a.session, a.locale)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.RateLimit(a.config.Server.RateLimit))

	page.Routes(r)
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CORS(a.config.Server.CORSOrigins))
		taskHandler.Routes(r)
	})
	r.Get("/health", taskHandler.HealthCheck)

	a.router = r
	return r
}

// Serve runs the HTTP server and the overdue watcher until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	a.server = &http.Server{
		Addr:         a.config.GetServerAddr(),
		Handler:      a.Router(),
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("App: server started", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		a.worker.Start(ctx)
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		return a.stopServer()
	})

	return g.Wait()
}

// RunTUI runs the terminal front-end in the foreground.
func (a *App) RunTUI(ctx context.Context) error {
	return tui.Run(ctx, a.service, a.session, a.locale, a.config.Worker.OverdueInterval)
}

func (a *App) stopServer() error {
	if a.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("App: server stopped")
	return nil
}

// Shutdown runs every registered hook and reports all failures together.
func (a *App) Shutdown() error {
	var err error
	for _, fn := range a.shutdowns {
		err = multierr.Append(err, fn())
	}
	a.shutdowns = nil
	return err
}
