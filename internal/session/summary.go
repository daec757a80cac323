package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	summaryBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("34")).Padding(0, 1)
	summaryTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	summaryLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// Summary renders an end-of-session report.
func Summary(s *Stats) string {
	rows := [][2]string{
		{"generations", fmt.Sprintf("%d", s.Generation)},
		{"live cells", fmt.Sprintf("%d", s.LiveCells)},
		{"avg population", fmt.Sprintf("%.1f", s.AveragePopulation)},
		{"gen/sec", fmt.Sprintf("%.1f", s.GenerationsPerSecond)},
		{"runtime", s.Elapsed().Round(time.Millisecond).String()},
	}
	lines := []string{summaryTitle.Render("Game of Life")}
	for _, r := range rows {
		lines = append(lines, summaryLabel.Render(fmt.Sprintf("%-15s", r[0]))+r[1])
	}
	return summaryBox.Render(strings.Join(lines, "\n"))
}
