package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/medreminder/internal/client/datetime"
	"github.com/dmitrijs2005/medreminder/internal/client/edit"
	"github.com/dmitrijs2005/medreminder/internal/client/models"
)

var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222"))

	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

// Formatter renders user-facing output. Timestamps are shown in loc.
type Formatter struct {
	colored bool
	loc     *time.Location
}

func NewFormatter(colored bool, loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{colored: colored, loc: loc}
}

func (f *Formatter) render(s lipgloss.Style, msg string) string {
	if f.colored {
		return s.Render(msg)
	}
	return msg
}

func (f *Formatter) Success(msg string) string {
	return f.render(SuccessStyle, "✅ "+msg)
}

func (f *Formatter) Error(msg string) string {
	return f.render(ErrorStyle, "❌ "+msg)
}

func (f *Formatter) Info(msg string) string {
	return f.render(InfoStyle, msg)
}

func (f *Formatter) Dim(msg string) string {
	return f.render(DimStyle, msg)
}

// When formats a stored schedule as local date and time.
func (f *Formatter) When(t time.Time) string {
	date, clock := datetime.Split(t, f.loc)
	return date + " " + clock
}

// Reminders renders the list with 1-based positions usable as references.
func (f *Formatter) Reminders(items []models.Reminder) string {
	if len(items) == 0 {
		return f.Info("No reminders yet. Use 'add' to create one.")
	}

	var b strings.Builder
	b.WriteString(f.render(HeaderStyle, fmt.Sprintf("Reminders (%d)", len(items))))
	for i, r := range items {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%2d. %s %s, %s, %s",
			i+1,
			f.render(HeaderStyle, r.Name),
			r.Dosage,
			f.When(r.ScheduledTime),
			days(r.Duration),
		)
		b.WriteString(" " + f.Dim("id="+r.ID))
		if r.Notes != "" {
			b.WriteString("\n    " + f.Dim(r.Notes))
		}
	}
	return b.String()
}

// Scratch renders the reminder being edited.
func (f *Formatter) Scratch(sc edit.Scratch) string {
	lines := []string{
		f.render(HeaderStyle, "Editing "+sc.ID),
		"name:     " + sc.Name,
		"dosage:   " + sc.Dosage,
		"date:     " + sc.Date,
		"time:     " + sc.Time,
		"duration: " + sc.Duration,
		"notes:    " + sc.Notes,
	}
	body := strings.Join(lines, "\n")
	if f.colored {
		return BoxStyle.Render(body)
	}
	return body
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
