package main

import (
	"fmt"

	"cadence/internal/models"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the CLI's styling definitions.
type Styles struct {
	Title    lipgloss.Style
	High     lipgloss.Style
	Medium   lipgloss.Style
	Low      lipgloss.Style
	Muted    lipgloss.Style
	Positive lipgloss.Style
	Warning  lipgloss.Style
}

// defaultStyles returns the terminal styling for human-readable output.
func defaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		High:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Medium:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Low:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Positive: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// priorityStyle maps a priority to its display style.
func (s Styles) priorityStyle(p models.Priority) lipgloss.Style {
	switch p {
	case models.PriorityHigh:
		return s.High
	case models.PriorityMedium:
		return s.Medium
	default:
		return s.Low
	}
}

// renderInsight formats one ranked insight for the terminal.
func (s Styles) renderInsight(rank int, in models.Insight) string {
	head := fmt.Sprintf("%d. %s %s",
		rank,
		s.priorityStyle(in.Priority).Render(fmt.Sprintf("[%s]", in.Priority)),
		s.Title.Render(in.Title),
	)
	meta := s.Muted.Render(fmt.Sprintf("   %s | confidence %.0f%%", in.Type, in.Confidence*100))
	return fmt.Sprintf("%s\n%s\n   %s", head, meta, in.Description)
}
