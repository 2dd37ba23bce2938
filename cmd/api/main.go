package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"

	appanalysis "github.com/checkmycar/checkmycar/internal/application/analysis"
	"github.com/checkmycar/checkmycar/internal/config"
	domain "github.com/checkmycar/checkmycar/internal/domain/analysis"
	"github.com/checkmycar/checkmycar/internal/infra/ai/openai"
	"github.com/checkmycar/checkmycar/internal/infra/ai/workersai"
	"github.com/checkmycar/checkmycar/internal/infra/httpserver"
)

func main() {
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.WithError(err).Fatal("config load error")
	}

	// Pick the vision provider. With no credentials the service stays up
	// and answers demo responses; that is the documented degraded mode.
	var client domain.VisionClient
	if cfg.ProviderConfigured() {
		switch cfg.LLM.Provider {
		case "openai":
			client = openai.NewClient(cfg.LLM.OpenAIAPIKey, cfg.LLM.OpenAIModel)
		default:
			client = workersai.NewClient(cfg.LLM.CFAccountID, cfg.LLM.CFAPIToken, cfg.LLM.CFModel, cfg.LLM.Timeout)
		}
		log.WithField("provider", cfg.LLM.Provider).Info("vision provider configured")
	} else {
		log.Warn("no provider credentials set, serving demo responses")
	}

	svc := appanalysis.NewService(client)
	handler := httpserver.NewRouter(svc, cfg.LLM.Provider, cfg.CORS.AllowedOrigins)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.LLM.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("addr", addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown error")
	}
}
