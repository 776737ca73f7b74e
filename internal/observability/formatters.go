// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Wittering/wigu-synthesis/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJohariWindow outputs a human-readable summary of the four quadrants.
func (p *Printer) PrintJohariWindow(window *types.JohariWindow) {
	if window == nil {
		return
	}

	var sb strings.Builder

	for _, quadrant := range window.Quadrants() {
		sb.WriteString(fmt.Sprintf("%s (%d):\n", quadrant.Name.Label(), quadrant.Count))
		count := min(len(quadrant.Themes), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", quadrant.Themes[i]))
		}
		if len(quadrant.Themes) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(quadrant.Themes)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Dominant:        %s\n", window.DominantQuadrant.Label()))
	sb.WriteString(fmt.Sprintf("Self-awareness:  %.2f\n", window.SelfAwarenessScore))
	sb.WriteString(fmt.Sprintf("Dev priority:    %.2f", window.DevelopmentPriority))

	p.printBox("JOHARI WINDOW", sb.String())
}

// PrintFiveInsights outputs the insight model grouped by category.
func (p *Printer) PrintFiveInsights(model *types.FiveInsightsModel) {
	if model == nil || model.Total() == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total insights: %d\n\n", model.Total()))

	categories := []struct {
		label    string
		insights []types.SynthesisInsight
	}{
		{types.CategoryStrength.Label(), model.EnergisingStrengths},
		{types.CategoryBlindspot.Label(), model.HiddenStrengths},
		{types.CategoryOverestimation.Label(), model.OverusedTalents},
		{types.CategoryDevelopment.Label(), model.AspirationalStrengths},
		{types.CategoryPositioning.Label(), model.MisalignedEnergies},
	}

	for _, category := range categories {
		if len(category.insights) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", category.label))
		count := min(len(category.insights), 3)
		for i := 0; i < count; i++ {
			insight := category.insights[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.2f)\n", insight.Title, insight.Confidence))
		}
		if len(category.insights) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(category.insights)-3))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Balance score: %.2f", model.BalanceScore))

	p.printBox("FIVE INSIGHTS MODEL", sb.String())
}

// PrintNarrative outputs the truths, tensions and proposed experiment.
func (p *Printer) PrintNarrative(frame *types.NarrativeFrame) {
	if frame == nil {
		return
	}

	var sb strings.Builder

	if len(frame.Truths) > 0 {
		sb.WriteString("Three Truths:\n")
		for i, truth := range frame.Truths {
			statement := truth.Statement
			if len(statement) > 50 {
				statement = statement[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, statement))
		}
		sb.WriteString("\n")
	}

	if len(frame.Tensions) > 0 {
		sb.WriteString("Two Tensions:\n")
		for _, tension := range frame.Tensions {
			sb.WriteString(fmt.Sprintf("  ⚠ %s (%.2f)\n", tension.Title, tension.OpportunityScore))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("One Experiment:\n")
	sb.WriteString(fmt.Sprintf("  %s\n", frame.Experiment.Title))
	sb.WriteString(fmt.Sprintf("  Duration:    %d days\n", frame.Experiment.EstimatedDurationDays))
	sb.WriteString(fmt.Sprintf("  Priority:    %s\n", frame.Experiment.Priority))
	sb.WriteString(fmt.Sprintf("  Feasibility: %.2f", frame.Experiment.FeasibilityScore))

	p.printBox("NARRATIVE FRAME", sb.String())
}

// PrintSynthesisSummary outputs the top-level scores of a finished synthesis.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSynthesisSummary(synthesis *types.CareerSynthesis) {
	if synthesis == nil {
		return
	}

	if synthesis.IsFallback() {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "⚠ FALLBACK SYNTHESIS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Session:     %s\n", synthesis.SessionID))
	sb.WriteString(fmt.Sprintf("Alignment:   %.2f\n", synthesis.AlignmentScore))
	sb.WriteString(fmt.Sprintf("Confidence:  %s\n", synthesis.ConfidenceLevel.Label()))
	sb.WriteString("\n")

	summary := synthesis.ExecutiveSummary
	if len(summary) > 150 {
		summary = summary[:147] + "..."
	}
	sb.WriteString("Summary:\n")
	for _, line := range wrapText(summary, boxWidth-6) {
		sb.WriteString(fmt.Sprintf("  %s\n", line))
	}

	if len(synthesis.StrategicRecommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(synthesis.StrategicRecommendations), 3)
		for i := 0; i < count; i++ {
			rec := synthesis.StrategicRecommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("SYNTHESIS SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	lines = append(lines, current)
	return lines
}
