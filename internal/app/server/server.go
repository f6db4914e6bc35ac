package server

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrx/internal/domain/directory"
	"hrx/internal/domain/leave"
	"hrx/internal/domain/notifications"
	"hrx/internal/domain/offboarding"
	"hrx/internal/domain/payroll"
	"hrx/internal/domain/performance"
	"hrx/internal/domain/projects"
	"hrx/internal/domain/settings"
	"hrx/internal/platform/config"
	authhandler "hrx/internal/transport/http/handlers/auth"
	dashboardhandler "hrx/internal/transport/http/handlers/dashboard"
	employeehandler "hrx/internal/transport/http/handlers/employees"
	leavehandler "hrx/internal/transport/http/handlers/leave"
	notificationshandler "hrx/internal/transport/http/handlers/notifications"
	offboardinghandler "hrx/internal/transport/http/handlers/offboarding"
	payrollhandler "hrx/internal/transport/http/handlers/payroll"
	performancehandler "hrx/internal/transport/http/handlers/performance"
	projectshandler "hrx/internal/transport/http/handlers/projects"
	reportshandler "hrx/internal/transport/http/handlers/reports"
	settingshandler "hrx/internal/transport/http/handlers/settings"
	"hrx/internal/transport/http/middleware"
)

// App wires every service behind one router. Tests construct it directly and
// drive the router with httptest.
type App struct {
	Config config.Config
	Router http.Handler

	Directory     *directory.Service
	Leave         *leave.Service
	Payroll       *payroll.Service
	Performance   *performance.Service
	Projects      *projects.Service
	Settings      *settings.Service
	Offboarding   *offboarding.Service
	Notifications *notifications.Store
}

func New(cfg config.Config) (*App, error) {
	notificationStore := notifications.NewStore()

	app := &App{
		Config:        cfg,
		Directory:     directory.NewService(),
		Leave:         leave.NewService(notificationStore),
		Payroll:       payroll.NewService(),
		Performance:   performance.NewService(notificationStore),
		Projects:      projects.NewService(),
		Settings:      settings.NewService(),
		Offboarding:   offboarding.NewService(),
		Notifications: notificationStore,
	}

	authHandler, err := authhandler.NewHandler(cfg.JWTSecret, cfg.DemoPassword, cfg.JWTTTL)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		// Login stays outside the token check.
		authHandler.RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTSecret))

			employeehandler.NewHandler(app.Directory).RegisterRoutes(r)
			leavehandler.NewHandler(app.Leave).RegisterRoutes(r)
			payrollhandler.NewHandler(app.Payroll).RegisterRoutes(r)
			performancehandler.NewHandler(app.Performance).RegisterRoutes(r)
			projectshandler.NewHandler(app.Projects).RegisterRoutes(r)
			reportshandler.NewHandler().RegisterRoutes(r)
			dashboardhandler.NewHandler(app.Leave).RegisterRoutes(r)
			settingshandler.NewHandler(app.Settings).RegisterRoutes(r)
			offboardinghandler.NewHandler(app.Offboarding).RegisterRoutes(r)
			notificationshandler.NewHandler(app.Notifications).RegisterRoutes(r)
		})
	})

	app.Router = router
	return app, nil
}

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	app, err := New(cfg)
	if err != nil {
		log.Fatalf("server setup failed: %v", err)
	}

	log.Printf("HRX server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
