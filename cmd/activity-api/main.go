package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saatviknagpal/fitness-app/internal/activity/api"
	"github.com/saatviknagpal/fitness-app/internal/activity/domain"
	persistence "github.com/saatviknagpal/fitness-app/internal/activity/postgres"
	"github.com/saatviknagpal/fitness-app/internal/activity/publish"
	"github.com/saatviknagpal/fitness-app/internal/activity/userclient"
	"github.com/saatviknagpal/fitness-app/internal/config"
	"github.com/saatviknagpal/fitness-app/internal/platform/httpserver"
)

func main() {
	cfg := config.LoadActivity()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	repo := persistence.NewRepository(pool)
	users := userclient.New(cfg.UserServiceURL, cfg.UserTimeout)
	publisher := publish.NewKafkaPublisher(publish.Config{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.ActivityTopic,
	})
	defer publisher.Close()

	service := domain.NewService(repo, users, publisher)

	handler := api.NewHandler(service)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	logger := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("%s %s", r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}

	server := httpserver.New(httpserver.Config{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, logger(mux))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("activity-service listening on %s", cfg.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
