package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"markbook/internal/server/models"
)

const barWidth = 50

var (
	subjectStyle = lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color("12"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	marksStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
)

// RenderBarChart draws a horizontal bar per subject, scaled to barWidth at
// the maximum mark. The input order is preserved.
func RenderBarChart(title string, scores []models.SubjectScore) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	for _, s := range scores {
		n := s.Marks * barWidth / models.MaxMarks
		bar := strings.Repeat("█", n)
		fmt.Fprintf(&b, "%s %s %s\n",
			subjectStyle.Render(s.Subject),
			barStyle.Render(bar),
			marksStyle.Render(strconv.Itoa(s.Marks)))
	}
	return b.String()
}
