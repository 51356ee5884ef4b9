package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/learnhub-center/backoffice/internal/config"
	"github.com/learnhub-center/backoffice/internal/domain/leave"
	"github.com/learnhub-center/backoffice/internal/domain/staff"
	appHTTP "github.com/learnhub-center/backoffice/internal/handler/http"
	"github.com/learnhub-center/backoffice/internal/pkg/database"
	"github.com/learnhub-center/backoffice/internal/pkg/jwt"
	"github.com/learnhub-center/backoffice/internal/repository/memory"
	"github.com/learnhub-center/backoffice/internal/repository/postgresql"
	"github.com/learnhub-center/backoffice/internal/repository/sqlite"
	leaveService "github.com/learnhub-center/backoffice/internal/service/leave"
)

type repositories struct {
	staff    staff.StaffRepository
	requests leave.LeaveRequestRepository
	balances leave.LeaveBalanceRepository
	close    func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openDirectory(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open directory", "driver", cfg.Directory.Driver, "error", err)
		os.Exit(1)
	}
	defer repos.close()

	policy := leaveService.NoticePolicy{
		MinNoticeDays:        cfg.Leave.MinNoticeDays,
		MediumSpanDays:       cfg.Leave.MediumSpanDays,
		MediumSpanNoticeDays: cfg.Leave.MediumSpanNoticeDays,
		LongSpanDays:         cfg.Leave.LongSpanDays,
		LongSpanNoticeDays:   cfg.Leave.LongSpanNoticeDays,
		MaxSpanDays:          cfg.Leave.MaxSpanDays,
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	ledger := leaveService.NewLedger(repos.staff, repos.requests, repos.balances, cfg.Leave.DefaultQuota)
	requestService := leaveService.NewRequestService(repos.requests, repos.staff, ledger, policy)
	leaveSvc := leaveService.NewLeaveService(repos.requests, ledger, requestService)

	accessHandler := appHTTP.NewAccessHandler()
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         logger,
			LogLevel:       cfg.SlogLevel(),
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		JWTService,
		repos.staff,
		accessHandler,
		leaveHandler,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", srv.Addr, "directory", cfg.Directory.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	slog.Info("Server stopped")
}

func openDirectory(ctx context.Context, cfg *config.Config) (repositories, error) {
	seed, err := staff.ParseSeed(cfg.Directory.SeedStaff, time.Now())
	if err != nil {
		return repositories{}, err
	}

	switch cfg.Directory.Driver {
	case config.DirectoryMemory:
		dir := memory.NewDirectory()
		if len(seed) > 0 {
			dir.Seed(seed)
			slog.Info("Seeded staff directory", "count", len(seed))
		}
		return repositories{
			staff:    dir.Staff(),
			requests: dir.LeaveRequests(),
			balances: dir.LeaveBalances(),
			close:    func() {},
		}, nil

	case config.DirectorySQLite:
		store, err := sqlite.New(ctx, cfg.Directory.SQLitePath)
		if err != nil {
			return repositories{}, err
		}
		if len(seed) > 0 {
			if err := store.Seed(ctx, seed); err != nil {
				store.Close()
				return repositories{}, fmt.Errorf("seed staff: %w", err)
			}
			slog.Info("Seeded staff directory", "count", len(seed))
		}
		return repositories{
			staff:    store.Staff(),
			requests: store.LeaveRequests(),
			balances: store.LeaveBalances(),
			close:    func() { store.Close() },
		}, nil

	default:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			return repositories{}, fmt.Errorf("connect to database: %w", err)
		}
		if cfg.Database.AutoMigrate {
			if err := postgresql.Migrate(ctx, db); err != nil {
				db.Close()
				return repositories{}, err
			}
			slog.Info("Database schema applied")
		}
		if len(seed) > 0 {
			if err := postgresql.SeedStaff(ctx, db, seed); err != nil {
				db.Close()
				return repositories{}, fmt.Errorf("seed staff: %w", err)
			}
			slog.Info("Seeded staff directory", "count", len(seed))
		}
		return repositories{
			staff:    postgresql.NewStaffRepository(db),
			requests: postgresql.NewLeaveRequestRepository(db),
			balances: postgresql.NewLeaveBalanceRepository(db),
			close:    db.Close,
		}, nil
	}
}
