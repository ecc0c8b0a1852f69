package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccentBright)).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess)).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Bold(true)

	captionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText)).
			Italic(true)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccentMain)).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDisabledText)).
				Padding(0, 1)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorAccentBright))

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(1, 2)
)

// flashLevel classifies a transient notice line.
type flashLevel int

const (
	flashNone flashLevel = iota
	flashInfo
	flashSuccess
	flashError
	flashWarning
)

// flash is the one-line notice rendered under the active tab.
type flash struct {
	level flashLevel
	text  string
}

func infoFlash(text string) flash    { return flash{level: flashInfo, text: text} }
func successFlash(text string) flash { return flash{level: flashSuccess, text: text} }
func errorFlash(text string) flash   { return flash{level: flashError, text: text} }
func warningFlash(text string) flash { return flash{level: flashWarning, text: text} }

func (f flash) render() string {
	switch f.level {
	case flashSuccess:
		return successStyle.Render("✓ " + f.text)
	case flashError:
		return errorStyle.Render("✗ " + f.text)
	case flashWarning:
		return warningStyle.Render("! " + f.text)
	case flashInfo:
		return captionStyle.Render(f.text)
	default:
		return ""
	}
}

// renderTabs renders the tab bar with the active tab highlighted.
func renderTabs(labels []string, active int) string {
	var b strings.Builder
	for i, label := range labels {
		text := fmt.Sprintf("%d:%s", i+1, label)
		if i == active {
			b.WriteString(activeTabStyle.Render(text))
		} else {
			b.WriteString(inactiveTabStyle.Render(text))
		}
	}
	return b.String()
}
