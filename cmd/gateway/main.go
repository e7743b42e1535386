package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saatviknagpal/fitness-app/internal/config"
	"github.com/saatviknagpal/fitness-app/internal/gateway"
	"github.com/saatviknagpal/fitness-app/internal/platform/auth"
	"github.com/saatviknagpal/fitness-app/internal/platform/httpserver"
)

func main() {
	cfg := config.LoadGateway()

	handler, err := gateway.New(gateway.Routes{
		UserServiceURL:     cfg.UserServiceURL,
		ActivityServiceURL: cfg.ActivityServiceURL,
	}, auth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer})
	if err != nil {
		log.Fatalf("failed to build gateway: %v", err)
	}

	logger := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("%s %s", r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}

	server := httpserver.New(httpserver.Config{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, logger(handler))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("gateway listening on %s", cfg.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
