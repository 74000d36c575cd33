package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/quickly-elect/cliparse"
	"github.com/danielhkuo/quickly-elect/db"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/middleware"
	"github.com/danielhkuo/quickly-elect/router"
)

func main() {
	var err error
	ctx := context.Background()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	admin := election.Address(cfg.AdminAddress)
	if err := db.EnsureElection(ctx, dbConn, admin); err != nil {
		slog.Error("election ownership check failed", "error", err)
		os.Exit(1)
	}

	// Rebuild the election from its journal
	journal := db.NewJournal(dbConn)
	events, err := journal.Load(ctx)
	if err != nil {
		slog.Error("journal load failed", "error", err)
		os.Exit(1)
	}

	e, err := election.Restore(admin, events,
		election.WithJournal(journal),
		election.WithLogger(slog.Default()),
		election.WithBaselineProposal(cfg.BaselineProposal),
	)
	if err != nil {
		slog.Error("election restore failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Election ready", "status", e.Status().String(), "events", len(events))

	// Create router
	mux := router.NewRouter(e, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
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
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
