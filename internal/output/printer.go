package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	Primary = lipgloss.Color("#E01A1A")
	Success = lipgloss.Color("#10B981") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Error   = lipgloss.Color("#EF4444") // Red
	Muted   = lipgloss.Color("#6B7280") // Gray

	// Styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Success)

	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Error)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Box for important info
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// Email address highlight
	EmailStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Primary).
			Padding(0, 1)
)

// PrintSuccess formats a success message with checkmark
func PrintSuccess(msg string) string {
	return SuccessStyle.Render("✓ " + msg)
}

// PrintError formats an error message
func PrintError(msg string) string {
	return ErrorStyle.Render("✗ " + msg)
}

// PrintWarning formats a warning message
func PrintWarning(msg string) string {
	return WarningStyle.Render("! " + msg)
}

// PrintInfo formats an info message
func PrintInfo(msg string) string {
	return MutedStyle.Render("• " + msg)
}

// ConsoleNotifier prints fire-and-forget user-visible messages to stdout.
type ConsoleNotifier struct{}

// Notify writes a warning-styled message. Notifications are best-effort and
// never block or fail the surrounding operation.
func (ConsoleNotifier) Notify(msg string) {
	fmt.Println(PrintWarning(msg))
}
