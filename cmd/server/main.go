package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"devops-info/service/internal/api"
	"devops-info/service/internal/config"
	"devops-info/service/internal/constants"
	"devops-info/service/internal/logging"
	"devops-info/service/internal/routes"
	"devops-info/service/internal/uptime"
)

const shutdownTimeout = 10 * time.Second

func main() {
	command := "serve"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "serve":
		// Continue to serve
	case "healthcheck":
		cfg := config.Load()
		if err := probe(healthURL(cfg), &http.Client{Timeout: 3 * time.Second}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	case "version":
		fmt.Printf("%s v%s\n", constants.ServiceName, constants.Version)
		return
	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Available commands: serve, healthcheck, version")
		os.Exit(1)
	}

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv, cfg.Debug); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	// Captured once, before the listener exists.
	tracker := uptime.New(time.Now())

	deps := api.InitDependencies(tracker)
	router := routes.RegisterRoutes(cfg, deps.Services.Info)

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(int(cfg.Port)))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logging.Fatal("Failed to bind listener", "address", addr, "error", err.Error())
	}

	logging.Info("Starting DevOps Info Service",
		"host", cfg.Host,
		"port", cfg.Port,
		"start_time", tracker.StartTime().Format(time.RFC3339),
		"environment", cfg.AppEnv,
		"debug", cfg.Debug,
	)

	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logging.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logging.Fatal("Server stopped with error", "error", err.Error())
	}
	logging.Info("Server stopped", "uptime_seconds", tracker.Seconds(time.Now()))
}
