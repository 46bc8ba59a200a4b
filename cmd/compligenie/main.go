package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/compligenie/compligenie/internal/api"
	"github.com/compligenie/compligenie/internal/billing"
	"github.com/compligenie/compligenie/internal/common"
	"github.com/compligenie/compligenie/internal/config"
	"github.com/compligenie/compligenie/internal/llm"
	"github.com/compligenie/compligenie/internal/mail"
	"github.com/compligenie/compligenie/internal/partner"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("compligenie: .env file not loaded", "error", err)
	} else {
		logger.Info("compligenie: environment loaded from .env")
	}

	addr := flag.String("addr", "", "listen address (overrides config)")
	configPath := flag.String("config", "compligenie.yaml", "path to the YAML configuration file")
	dbPath := flag.String("db", "", "path to the partner SQLite database (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("compligenie: config load failed", "error", err)
		fmt.Println("config error:", err)
		os.Exit(1)
	}
	if trimmed := strings.TrimSpace(*addr); trimmed != "" {
		cfg.Server.Addr = trimmed
	}
	if trimmed := strings.TrimSpace(*dbPath); trimmed != "" {
		cfg.Database.Path = trimmed
	}

	logger.Info("compligenie: startup initiated", "addr", cfg.Server.Addr, "db", cfg.Database.Path)

	store, err := partner.Open(cfg.Database.Path)
	if err != nil {
		logger.Error("compligenie: partner store open failed", "error", err)
		fmt.Println("store error:", err)
		os.Exit(1)
	}
	defer store.Close()

	var billingSvc billing.Service
	switch cfg.Billing.Provider {
	case "", "mock":
		logger.Warn("compligenie: using mock billing provider")
		billingSvc = billing.NewMock()
	default:
		logger.Error("compligenie: unknown billing provider", "provider", cfg.Billing.Provider)
		fmt.Println("unknown billing provider:", cfg.Billing.Provider)
		os.Exit(1)
	}

	provider := llm.NewProvider()
	logger.Info("compligenie: llm provider ready", "provider", provider.Name())

	server, err := api.NewServer(store, billingSvc, mail.LogSender{}, provider, api.Config{
		PublicBaseURL: cfg.Server.PublicBaseURL,
		WebhookSecret: cfg.Billing.WebhookSecret,
		Narrative:     cfg.Policy.Narrative,
	})
	if err != nil {
		logger.Error("compligenie: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("compligenie: shutdown failed", "error", err)
		}
	}()

	logger.Info("compligenie: server listening", "addr", cfg.Server.Addr, "health", "/healthz", "metrics", "/metrics")
	fmt.Printf("Serving on %s\n", cfg.Server.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("compligenie: server stopped", "error", err)
		fmt.Println("server stopped:", err)
		os.Exit(1)
	}
	logger.Info("compligenie: server stopped cleanly")
}
