package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/crmforge-dev/crmforge/internal/certs"
	"github.com/crmforge-dev/crmforge/internal/engine"
	"github.com/crmforge-dev/crmforge/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	log, err := newLog("crmforged")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Errorw("startup", "err", err)
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	cfg := struct {
		Http struct {
			Host            string        `conf:"default:0.0.0.0:7002"`
			ReadTimeout     time.Duration `conf:"default:5s"`
			WriteTimeout    time.Duration `conf:"default:10s"`
			IdleTimeout     time.Duration `conf:"default:120s"`
			ShutdownTimeout time.Duration `conf:"default:20s"`
		}
		TLS struct {
			Enabled bool `conf:"default:false"`
		}
		SeedFile string `conf:"help:optional JSON file of customer records to boot with"`
		GinMode  string `conf:"default:release"`
	}{}

	help, err := conf.Parse("CRM", &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	gin.SetMode(cfg.GinMode)

	// =========================================================================
	// Record store

	seed := engine.SeedCustomers()
	if cfg.SeedFile != "" {
		seed, err = engine.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return fmt.Errorf("loading seed: %w", err)
		}
	}

	store := engine.NewMemStore(seed)
	log.Infow("startup", "status", "store initialized", "records", store.Len())

	// =========================================================================
	// Router + server

	router := server.New(store, log)

	srv := &http.Server{
		Addr:         cfg.Http.Host,
		Handler:      router,
		ReadTimeout:  cfg.Http.ReadTimeout,
		WriteTimeout: cfg.Http.WriteTimeout,
		IdleTimeout:  cfg.Http.IdleTimeout,
		ErrorLog:     zap.NewStdLog(log.Desugar()),
	}

	if cfg.TLS.Enabled {
		cert, err := certs.GenerateSelfSigned()
		if err != nil {
			return fmt.Errorf("generating certificate: %w", err)
		}
		srv.TLSConfig = &tls.Config{Certificates: []tls.Certificate{cert}}
		log.Infow("startup", "status", "self-signed TLS enabled")
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		log.Infow("startup", "status", "api listening", "host", cfg.Http.Host, "tls", cfg.TLS.Enabled)
		if cfg.TLS.Enabled {
			serverErrors <- srv.ListenAndServeTLS("", "")
		} else {
			serverErrors <- srv.ListenAndServe()
		}
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func newLog(serviceName string) (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	config.InitialFields = map[string]interface{}{
		"service": serviceName,
	}

	log, err := config.Build()
	if err != nil {
		return nil, err
	}

	return log.Sugar(), nil
}
