// Package main provides the entry point for the career synthesis agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "synthesis_agent",
	Short: "Career Synthesis Engine",
	Long:  "Synthesis agent compares self-reflection and advisor responses to derive a Johari Window, a five-category insight model and a Three Truths / Two Tensions / One Experiment narrative, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
