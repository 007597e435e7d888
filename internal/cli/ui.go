package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/askern/polycipher/pkg/attack"
	"github.com/askern/polycipher/pkg/scoring"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	// StyleDanger for failure messages.
	StyleDanger = lipgloss.NewStyle().Foreground(colorRed)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Score Display
// =============================================================================

// scoreStyle picks a color band for a final score.
func scoreStyle(final float64) lipgloss.Style {
	switch {
	case final >= 70:
		return StyleSuccess
	case final >= 40:
		return StyleWarning
	default:
		return StyleDanger
	}
}

// scoreBar renders a fixed-width bar for a 0-100 score.
func scoreBar(final float64) string {
	const width = 25
	filled := int(final * width / 100)
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return scoreStyle(final).Render(bar)
}

// printBreakdown prints a score breakdown term by term.
func printBreakdown(b scoring.Breakdown) {
	printKeyValue("base", fmt.Sprintf("%+.1f", b.Base))
	printKeyValue("entropy", fmt.Sprintf("%+.1f", b.Entropy))
	printKeyValue("diffusion", fmt.Sprintf("%+.1f", b.Diffusion))
	printKeyValue("key space", fmt.Sprintf("%+.1f", b.KeySpace))
	printKeyValue("penalties", fmt.Sprintf("%+.1f", b.Penalties))
	for _, reason := range b.PenaltyReasons {
		printDetail("%s", reason)
	}

	fmt.Println()
	final := scoreStyle(b.Final).Bold(true).Render(fmt.Sprintf("%.0f / 100", b.Final))
	fmt.Println(scoreBar(b.Final) + " " + final)
}

// printAttackReport prints attack findings with their penalties.
func printAttackReport(report attack.Report, patterns []string) {
	for _, finding := range report.Attacks {
		label := fmt.Sprintf("%s (-%d)", finding.Name, finding.Penalty)
		if finding.Penalty == 0 {
			printSuccess("%s", label)
		} else {
			printError("%s", label)
		}
		printDetail("%s", finding.Description)
	}
	for _, warning := range patterns {
		fmt.Println(StyleWarning.Render("! " + warning))
	}
	fmt.Println()
	printKeyValue("total", fmt.Sprintf("-%d", report.TotalPenalty))
}
