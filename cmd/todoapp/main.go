package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"todoapp/internal/config"
	"todoapp/internal/handler"
	"todoapp/internal/job"
	"todoapp/internal/repo"
	"todoapp/internal/schedule"
	"todoapp/internal/service"
	"todoapp/internal/session"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "todoapp",
		Short: "per-user todo list server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the todo server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))

			db, err := repo.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			if err := repo.ApplyMigrations(db); err != nil {
				return fmt.Errorf("migrations: %w", err)
			}
			return runServer(cfg, db)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config, db *sqlx.DB) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	authService := service.NewAuthService(repo.NewUserRepo(db), cfg.BcryptCost)
	todoService := service.NewTodoService(repo.NewTodoRepo(db))

	if cfg.AdminSeed.Enable {
		if err := authService.EnsureAdmin(ctx, cfg.AdminSeed.Email, cfg.AdminSeed.Password, cfg.AdminSeed.UserName); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	sessions := session.NewManager(cfg.Session)

	gin.SetMode(gin.ReleaseMode)
	router, err := handler.NewRouter(handler.RouterDeps{
		Auth:           handler.NewAuthHandler(authService, sessions),
		Todos:          handler.NewTodoHandler(todoService, authService),
		Sessions:       sessions,
		EnableRegister: cfg.EnableRegister,
		LoginRateLimit: time.Duration(cfg.LoginRateLimitMS) * time.Millisecond,
	})
	if err != nil {
		return fmt.Errorf("init router: %w", err)
	}

	if cfg.MaintenanceCron != "" {
		scheduler := schedule.NewCronScheduler()
		if err := scheduler.AddJob(job.NewDBMaintenanceJob(db), cfg.MaintenanceCron); err != nil {
			return fmt.Errorf("schedule maintenance: %w", err)
		}
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	server := &http.Server{Addr: addr, Handler: router}
	logutil.GetLogger(ctx).Info("http server listening",
		zap.String("addr", addr),
		zap.String("db_path", cfg.DBPath),
	)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
