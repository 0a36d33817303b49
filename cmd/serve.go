package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/barkoapp/barko/internal/config"
	"github.com/barkoapp/barko/internal/llm"
	"github.com/barkoapp/barko/internal/logger"
	"github.com/barkoapp/barko/internal/plan"
	"github.com/barkoapp/barko/internal/profile"
	"github.com/barkoapp/barko/internal/progress"
	"github.com/barkoapp/barko/internal/server"
	"github.com/barkoapp/barko/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Mode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Nil provider means no LLM configured; onboarding uses the
	// deterministic template generator.
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	if provider == nil {
		log.Warn("no LLM provider configured, plans use the template generator")
	} else {
		log.Info("LLM provider ready", "model", provider.ModelID())
	}

	gen := plan.NewGenerator(provider, plan.DefaultConfig())
	profiles := profile.NewService(st.ProfileRepo(), plan.NewService(gen), log)
	tracker := progress.NewTracker(st.ProfileRepo(), st.ProgressRepo())
	srv := server.New(log, profiles, tracker, st.ProgressRepo(), cfg.JWTSecret)

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Addr, "db", dbPath)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
