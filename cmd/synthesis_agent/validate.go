package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Wittering/wigu-synthesis/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <synthesis.json>",
	Short: "Validate a synthesis document against the wire schema",
	Long:  `Checks a previously exported synthesis JSON document against the published JSON Schema and reports every violation.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := schemas.ValidateSynthesisDocument(data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Fprintf(os.Stderr, "❌ %s is not a valid synthesis document\n\n%s", path, validationErr.Error())
			os.Exit(1)
		}
		return err
	}

	fmt.Printf("✅ %s is a valid synthesis document\n", path)
	return nil
}
