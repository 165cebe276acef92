package cmd

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// statusColors maps display statuses to terminal colors for list rendering.
var statusColors = map[string]string{
	"pending":     "11",
	"interviewed": "12",
	"approved":    "10",
	"rejected":    "9",
	"active":      "10",
	"paused":      "11",
	"closed":      "8",
	"draft":       "7",
	"applied":     "12",
	"in_progress": "11",
	"hired":       "10",
}

// renderStatus colors a status token, falling back to the plain value.
func renderStatus(status string) string {
	color, ok := statusColors[status]
	if !ok {
		return status
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(status)
}
