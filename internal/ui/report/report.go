// Package report renders tick reports as human-readable text.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/contribulate/dagster/internal/core/domain"
	"github.com/contribulate/dagster/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	assetNameStyle = lipgloss.NewStyle().
			Bold(true)

	faintStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)

// Render formats a tick report for terminal output. Assets are listed in the
// order the orchestrator committed them, with one line per asset, followed by
// the launched run requests and a summary line.
func Render(r *domain.TickReport) string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("TICK "+r.EvaluatedAt.UTC().Format(time.RFC3339)) + "\n\n")

	counts := map[domain.AssetTickStatus]int{}
	for _, o := range r.Outcomes {
		counts[o.Status]++
		s.WriteString(renderOutcome(o) + "\n")
	}

	if len(r.RunRequests) > 0 {
		s.WriteString("\n" + assetNameStyle.Render("Run requests:") + "\n")
		for _, req := range r.RunRequests {
			s.WriteString("  " + renderRequest(req) + "\n")
		}
	}

	s.WriteString("\n" + summaryLine(counts) + "\n")
	return s.String()
}

func renderOutcome(o domain.AssetOutcome) string {
	icon := lipgloss.NewStyle().
		Foreground(style.StatusColor(o.Status)).
		Render(style.StatusIcon(o.Status))

	line := fmt.Sprintf("  %s %s %s", icon, assetNameStyle.Render(o.Asset.String()), strings.ToLower(string(o.Status)))

	switch o.Status {
	case domain.StatusMaterialize:
		if o.Result != nil {
			line += " " + o.Result.TrueSubset().String()
		}
	case domain.StatusFail, domain.StatusBlocked:
		if o.Reason != "" {
			line += faintStyle.Render(" (" + o.Reason + ")")
		}
	}
	return line
}

func renderRequest(req domain.RunRequest) string {
	assets := make([]string, len(req.Assets))
	for i, a := range req.Assets {
		assets[i] = a.String()
	}
	line := strings.Join(assets, ", ")
	if len(req.PartitionKeys) > 0 {
		line += " [" + strings.Join(req.PartitionKeys, ", ") + "]"
	}
	return line
}

func summaryLine(counts map[domain.AssetTickStatus]int) string {
	parts := []string{
		fmt.Sprintf("%d materialize", counts[domain.StatusMaterialize]),
		fmt.Sprintf("%d skip", counts[domain.StatusSkip]),
	}
	if n := counts[domain.StatusBlocked]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d blocked", n))
	}
	if n := counts[domain.StatusFail]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", n))
	}
	return faintStyle.Render(strings.Join(parts, ", "))
}
