package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type application struct {
	config Config
	logger *zap.Logger
	stats  *statsStore
	now    func() time.Time
	random func() float64
}

func main() {
	cfg := LoadConfig()
	if err := newRootCmd(&cfg, serve).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *Config, run func(Config) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "fansurvey",
		Short:        "Football fan survey dashboard",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(*cfg)
		},
	}
	cmd.Flags().IntVar(&cfg.Port, "port", cfg.Port, "HTTP port (env PORT)")
	cmd.Flags().StringVar(&cfg.Env, "env", cfg.Env, "Environment (development|staging|production)")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	return cmd
}

func serve(cfg Config) error {
	logger, closeLog, err := newLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer closeLog()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := openStatsStore(ctx)
	if err != nil {
		logger.Error("failed to open stats store", zap.Error(err))
		return err
	}
	defer stats.Close()

	app := &application{
		config: cfg,
		logger: logger,
		stats:  stats,
		now:    time.Now,
		random: rand.Float64,
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		ErrorLog:     zap.NewStdLog(logger),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("⚽ Football Fan Survey is running",
			zap.String("addr", "http://localhost"+srv.Addr), zap.String("env", cfg.Env))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (app *application) routes() http.Handler {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(app.notFoundHandler)

	// The bare root is the initial state
	router.HandlerFunc(http.MethodGet, "/", app.viewHandler(ViewSurvey))
	for _, v := range allViews {
		router.HandlerFunc(http.MethodGet, v.Path(), app.viewHandler(v))
	}
	router.HandlerFunc(http.MethodPost, ViewSurvey.Path(), app.submitSurveyHandler)
	router.HandlerFunc(http.MethodGet, "/navigate", app.navigateHandler)

	router.HandlerFunc(http.MethodGet, "/charts/:kind", app.chartHandler)
	if app.config.Env != "production" {
		router.HandlerFunc(http.MethodGet, "/debug/:dataset", app.debugHandler)
	}

	router.HandlerFunc(http.MethodGet, "/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return logRequests(app.logger, router)
}
