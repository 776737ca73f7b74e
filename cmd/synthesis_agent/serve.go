package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Wittering/wigu-synthesis/internal/collab"
	"github.com/Wittering/wigu-synthesis/internal/llm"
	"github.com/Wittering/wigu-synthesis/internal/server"
	"github.com/Wittering/wigu-synthesis/internal/synthesis"
)

var (
	servePort    int
	serveTimeout int
	serveAuth    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for running and retrieving syntheses.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().IntVar(&serveTimeout, "timeout", int(collab.DefaultTimeout/time.Second), "Per collaborator-call timeout in seconds")
	serveCmd.Flags().BoolVar(&serveAuth, "auth", false, "Require JWT bearer authentication (reads JWT_SECRET)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	logger, err := newLogger(false)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	engineOpts := []synthesis.Option{synthesis.WithLogger(logger)}
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		defer func() { _ = client.Close() }()

		timeout := time.Duration(serveTimeout) * time.Second
		engineOpts = append(engineOpts, synthesis.WithCollaborator(collab.NewGeminiCollaborator(client, timeout, logger)))
	}

	cfg := server.Config{
		Port:        servePort,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RequireAuth: serveAuth,
	}

	srv, err := server.New(cfg, synthesis.NewEngine(engineOpts...), logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
