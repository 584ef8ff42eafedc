// Package style provides shared UI styling primitives including colors and
// icons for consistent visual presentation across the CLI.
package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/contribulate/dagster/internal/core/domain"
)

// Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)

// StatusIcon returns the icon shown for an asset's tick outcome.
func StatusIcon(status domain.AssetTickStatus) string {
	switch status {
	case domain.StatusMaterialize:
		return Check
	case domain.StatusSkip:
		return Circle
	case domain.StatusBlocked:
		return Tilde
	case domain.StatusFail:
		return Cross
	default:
		return Dot
	}
}

// StatusColor returns the color for an asset's tick outcome.
func StatusColor(status domain.AssetTickStatus) lipgloss.Color {
	switch status {
	case domain.StatusMaterialize:
		return Green
	case domain.StatusSkip:
		return Slate
	case domain.StatusBlocked:
		return Yellow
	case domain.StatusFail:
		return Red
	default:
		return Slate
	}
}
