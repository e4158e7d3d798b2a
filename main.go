package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielhkuo/age-toolbox/cliparse"
	"github.com/danielhkuo/age-toolbox/db"
	"github.com/danielhkuo/age-toolbox/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	})))

	// Open the stunt catalog; the workbook is created on the first add
	store := db.NewStore(cfg.StuntsPath)
	if _, err := os.Stat(store.Path()); err != nil {
		slog.Warn("stunt workbook not found, starting with an empty catalog", "path", store.Path())
	} else {
		slog.Info("Stunt workbook ready", "path", store.Path())
	}

	// Create router
	handler := router.NewRouter(store, nil, cfg)

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    cfg.Addr(),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "addr", cfg.Addr())
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
