package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/zhouzirui/mindnest/backend/internal/analysis/sentiment"
	"github.com/zhouzirui/mindnest/backend/internal/config"
	"github.com/zhouzirui/mindnest/backend/internal/handler"
	"github.com/zhouzirui/mindnest/backend/internal/service/ai"
	"github.com/zhouzirui/mindnest/backend/internal/service/chat"
	sentimentservice "github.com/zhouzirui/mindnest/backend/internal/service/sentiment"
	"github.com/zhouzirui/mindnest/backend/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := logger.Setup(cfg.Log); err != nil {
		slog.Error("failed to set up logger", "error", err)
		os.Exit(1)
	}
	if envErr != nil {
		slog.Warn("no .env file loaded, continuing with system environment variables only", "error", envErr)
	}

	aiService, err := ai.NewService(ctx, cfg.LLM)
	if err != nil {
		slog.Error("failed to initialize LLM relay", "error", err)
		os.Exit(1)
	}
	slog.Info("LLM relay initialized", "host", cfg.LLM.Host, "model", cfg.LLM.Model, "timeout", cfg.LLM.Timeout.String())

	chatService := chat.NewService(aiService)
	sentimentService := sentimentservice.NewService(sentiment.NewAnalyzer())

	router := handler.NewRouter(chatService, sentimentService)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("backend listening", "addr", addr)
	if err := runServer(ctx, srv); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
