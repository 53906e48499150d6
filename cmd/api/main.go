package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcelsud/webhook-capture/capture"
	"github.com/marcelsud/webhook-capture/capture/postgres"
	captureredis "github.com/marcelsud/webhook-capture/capture/redis"
	"github.com/marcelsud/webhook-capture/codegen"
	"github.com/marcelsud/webhook-capture/config"
	"github.com/marcelsud/webhook-capture/internal/http/chi"
	"github.com/marcelsud/webhook-capture/metrics"
)

const TIMEOUT = 30 * time.Second

/*
 * As importações devem ser feitas apenas em uma direção: para baixo. O aplicativo (api, cli) importa camadas de negócios,
 * que importam a camada de armazenamento
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	repo, err := newRepository(cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer repo.Close(ctx)

	captureService := capture.NewService(repo)

	gemini := codegen.NewGeminiClient(
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		time.Duration(cfg.GeminiTimeoutSeconds)*time.Second,
	)
	codegenService := codegen.NewService(repo, gemini)

	collector := metrics.NewStoreCollector(repo)
	exporter, err := metrics.NewOTelExporter(collector)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer exporter.Shutdown(ctx)

	r := chi.Handlers(ctx, captureService, codegenService, cfg.CapturePrefix)
	r.Handle("/metrics", exporter.ServeHTTP())
	http.Handle("/", r)
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      http.DefaultServeMux,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	fmt.Printf("Listening on port %s\n", cfg.Port)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		fmt.Println(err)
		return
	}
	err = <-errShutdown
	if err != nil {
		fmt.Println(err)
		return
	}
}

// newRepository picks the storage backend from configuration
func newRepository(cfg *config.Config) (capture.Repository, error) {
	switch cfg.Storage {
	case "redis":
		return captureredis.NewRepository(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case "postgres":
		return postgres.NewRepository(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Storage)
	}
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		fmt.Printf("\nShutting down server...\n")
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	}
}
