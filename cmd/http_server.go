package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/activity"
	activitySQLite "github.com/frahmantamala/employee-management/internal/activity/sqlite"
	"github.com/frahmantamala/employee-management/internal/attendance"
	attendanceSQLite "github.com/frahmantamala/employee-management/internal/attendance/sqlite"
	activityDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/activity"
	attendanceDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/employee"
	shiftDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/shift"
	"github.com/frahmantamala/employee-management/internal/core/events"
	"github.com/frahmantamala/employee-management/internal/dashboard"
	"github.com/frahmantamala/employee-management/internal/employee"
	employeeSQLite "github.com/frahmantamala/employee-management/internal/employee/sqlite"
	"github.com/frahmantamala/employee-management/internal/shift"
	shiftSQLite "github.com/frahmantamala/employee-management/internal/shift/sqlite"
	"github.com/frahmantamala/employee-management/internal/transport/rest"
	"github.com/frahmantamala/employee-management/internal/transport/swagger"
	"github.com/frahmantamala/employee-management/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	gormSQLite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server that exposes the employee data store`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Bus    *events.EventBus
	Logger *slog.Logger

	EmployeeHandler   *employee.Handler
	ShiftHandler      *shift.Handler
	AttendanceHandler *attendance.Handler
	DashboardHandler  *dashboard.Handler
	ActivityHandler   *activity.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) {
	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		deps.EmployeeHandler,
		deps.ShiftHandler,
		deps.AttendanceHandler,
		deps.DashboardHandler,
		deps.ActivityHandler,
		deps.Logger,
	)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	log := logger.LoggerWrapper()

	if err := swagger.ValidateSpec(context.Background(), "./api/openapi.yml"); err != nil {
		log.Warn("openapi spec validation failed", "error", err)
	}

	db, gormDB, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// create-if-absent on every start; existing data is untouched
	if err := gormDB.AutoMigrate(
		&employeeDatamodel.Employee{},
		&shiftDatamodel.Shift{},
		&attendanceDatamodel.Record{},
		&activityDatamodel.Entry{},
	); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	bus := events.NewEventBus(log)
	bus.Subscribe(events.EventTypeEmployeeUpdated, func(ctx context.Context, event events.Event) error {
		// stand-in for the UI refresh push; clients poll or listen here
		log.Debug("change notification", "event_id", event.EventID(), "payload", event.Payload())
		return nil
	})

	activityService := activity.NewService(activitySQLite.NewActivityRepository(gormDB), log)
	employeeService := employee.NewService(employeeSQLite.NewEmployeeRepository(gormDB), activityService, bus, log)
	shiftService := shift.NewService(shiftSQLite.NewShiftRepository(gormDB), employeeService, activityService, bus, log)
	attendanceService := attendance.NewService(attendanceSQLite.NewAttendanceRepository(gormDB), employeeService, activityService, bus, log)
	dashboardService := dashboard.NewService(employeeService, attendanceService, log)

	return &Dependencies{
		Config: config,
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
		Bus:    bus,
		Logger: log,

		EmployeeHandler:   employee.NewHandler(employeeService),
		ShiftHandler:      shift.NewHandler(shiftService),
		AttendanceHandler: attendance.NewHandler(attendanceService),
		DashboardHandler:  dashboard.NewHandler(dashboardService),
		ActivityHandler:   activity.NewHandler(activityService),
	}, nil
}

// initDB opens one connection to the store and hands the same handle to both
// sqlx (ping/health) and GORM (repositories).
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, *gorm.DB, error) {
	var driverName string
	switch cfg.Driver {
	case internal.DriverPostgres:
		driverName = "pgx"
	default:
		driverName = "sqlite3"
	}

	dbConn, err := sqlx.Connect(driverName, cfg.GetDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	var dialector gorm.Dialector
	if cfg.Driver == internal.DriverPostgres {
		dialector = gormPostgres.New(gormPostgres.Config{Conn: dbConn.DB})
	} else {
		dialector = &gormSQLite.Dialector{Conn: dbConn.DB}
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		_ = dbConn.Close()
		return nil, nil, fmt.Errorf("failed to open gorm over db connection: %w", err)
	}

	return dbConn, gormDB, nil
}
