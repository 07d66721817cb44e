package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"worklog/config"
	"worklog/database"
	"worklog/drafting"
	"worklog/handlers"
	"worklog/session"
	"worklog/web"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSessionSecret = "your-super-secret-key-change-in-production"

var (
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "worklog",
	Short: "Employee work log tracker",
	Long: `worklog lets employees sign in by first name, record the hours they
worked each day, and see their hour totals and salary estimates.

Run without a subcommand to start the web server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		logger, err = cfg.NewLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the employees and work_logs tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		logger.Info("migrations applied", zap.String("driver", cfg.DatabaseDriver))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level, including SQL statements")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(employeeCmd)
	rootCmd.AddCommand(reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openDatabase() (*gorm.DB, error) {
	level := gormlogger.Warn
	if verbose || cfg.Debug() {
		level = gormlogger.Info
	}
	return database.Open(cfg.DatabaseDriver, cfg.DatabaseURL, level)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase()
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	if cfg.SessionSecret == defaultSessionSecret {
		logger.Warn("SESSION_SECRET is the built-in default; set it before deploying")
	}
	if cfg.GeminiAPIKey == "" {
		logger.Warn("API_KEY not set; description drafting is disabled")
	}

	templates, err := web.Templates(handlers.FuncMap(cfg.CurrencySymbol))
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Config:    cfg,
		Repo:      database.NewRepository(db),
		Sessions:  session.NewStore(cfg.SessionSecret, cfg.SessionExpiration, cfg.SecureCookies),
		Drafter:   drafting.NewGenAIService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger),
		Templates: templates,
		Logger:    logger,
	})

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
