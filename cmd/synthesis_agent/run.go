package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Wittering/wigu-synthesis/internal/collab"
	"github.com/Wittering/wigu-synthesis/internal/config"
	"github.com/Wittering/wigu-synthesis/internal/db"
	"github.com/Wittering/wigu-synthesis/internal/llm"
	"github.com/Wittering/wigu-synthesis/internal/observability"
	"github.com/Wittering/wigu-synthesis/internal/synthesis"
	"github.com/Wittering/wigu-synthesis/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run a synthesis over self and advisor response files",
	Long: `Reconciles self-reflection and advisor responses into a full career synthesis: theme sets, Johari Window, five-category insights, narrative frame and scores.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runSynthesisCmd,
}

var (
	runConfigPath   string
	runSessionID    string
	runSelfPath     string
	runAdvisorsPath string
	runOutput       string
	runAPIKey       string
	runTimeout      int
	runDatabaseURL  string
	runVerbose      bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runSessionID, "session", "s", "", "Reflection session identifier")
	runCommand.Flags().StringVar(&runSelfPath, "self", "", "Path to self response JSON file")
	runCommand.Flags().StringVar(&runAdvisorsPath, "advisors", "", "Path to advisor response JSON file")
	runCommand.Flags().StringVarP(&runOutput, "output", "o", "", "Path to write the synthesis JSON (defaults to stdout)")
	runCommand.Flags().IntVar(&runTimeout, "timeout", 0, "Per collaborator-call timeout in seconds")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for artifact persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runSynthesisCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("session") {
		cfg.SessionID = runSessionID
	}
	if cmd.Flags().Changed("self") {
		cfg.SelfResponses = runSelfPath
	}
	if cmd.Flags().Changed("advisors") {
		cfg.AdvisorResponses = runAdvisorsPath
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = runOutput
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = runTimeout
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		TimeoutSeconds: int(collab.DefaultTimeout / time.Second),
	})

	// Step 4: Validate required fields
	if cfg.SessionID == "" {
		return fmt.Errorf("--session is required (via flag or config)")
	}
	if cfg.SelfResponses == "" {
		return fmt.Errorf("--self is required (via flag or config)")
	}
	if cfg.AdvisorResponses == "" {
		return fmt.Errorf("--advisors is required (via flag or config)")
	}

	// API key is optional; without one the deterministic local fallback is
	// used for theme extraction and narrative text.
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	self, err := loadSelfResponses(cfg.SelfResponses)
	if err != nil {
		return err
	}
	advisors, err := loadAdvisorResponses(cfg.AdvisorResponses)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	engineOpts := []synthesis.Option{synthesis.WithLogger(logger)}
	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		defer func() { _ = client.Close() }()

		timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
		engineOpts = append(engineOpts, synthesis.WithCollaborator(collab.NewGeminiCollaborator(client, timeout, logger)))
	}

	engine := synthesis.NewEngine(engineOpts...)
	result, err := engine.GenerateSynthesis(ctx, cfg.SessionID, self, advisors, nil)
	if err != nil {
		return fmt.Errorf("synthesis failed: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintJohariWindow(&result.Johari)
		printer.PrintFiveInsights(&result.Insights)
		printer.PrintNarrative(&result.Narrative)
		printer.PrintSynthesisSummary(result)
	}

	if cfg.DatabaseURL != "" {
		if err := persistSynthesis(ctx, cfg.DatabaseURL, cfg.SessionID, result); err != nil {
			return err
		}
	}

	return writeSynthesis(cfg.Output, result)
}

// loadSelfResponses reads and validates a JSON array of self responses.
func loadSelfResponses(path string) ([]types.Response, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read self responses %s: %w", path, err)
	}

	var responses []types.Response
	if err := json.Unmarshal(data, &responses); err != nil {
		return nil, fmt.Errorf("failed to parse self responses %s: %w", path, err)
	}

	for i := range responses {
		if err := types.ValidateResponse(&responses[i]); err != nil {
			return nil, fmt.Errorf("self response %d in %s: %w", i, path, err)
		}
	}
	return responses, nil
}

// loadAdvisorResponses reads and validates a JSON array of advisor responses.
func loadAdvisorResponses(path string) ([]types.AdvisorResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read advisor responses %s: %w", path, err)
	}

	var responses []types.AdvisorResponse
	if err := json.Unmarshal(data, &responses); err != nil {
		return nil, fmt.Errorf("failed to parse advisor responses %s: %w", path, err)
	}

	for i := range responses {
		if err := types.ValidateAdvisorResponse(&responses[i]); err != nil {
			return nil, fmt.Errorf("advisor response %d in %s: %w", i, path, err)
		}
	}
	return responses, nil
}

// persistSynthesis stores the result under a new run.
func persistSynthesis(ctx context.Context, databaseURL, sessionID string, result *types.CareerSynthesis) error {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	runID, err := database.CreateRun(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	if err := database.SaveSynthesis(ctx, runID, result); err != nil {
		return fmt.Errorf("failed to save synthesis: %w", err)
	}

	status := "completed"
	if result.IsFallback() {
		status = "fallback"
	}
	if err := database.CompleteRun(ctx, runID, status); err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// writeSynthesis writes the result as indented JSON to path, or stdout when
// path is empty.
func writeSynthesis(path string, result *types.CareerSynthesis) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode synthesis: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write synthesis to %s: %w", path, err)
	}
	return nil
}

// newLogger builds a development logger in verbose mode, production otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
