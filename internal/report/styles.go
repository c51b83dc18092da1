package report

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles used by the text renderer.
type Styles struct {
	Start  lipgloss.Style
	Pass   lipgloss.Style
	Warn   lipgloss.Style
	Fail   lipgloss.Style
	Header lipgloss.Style
	Banner lipgloss.Style
	Detail lipgloss.Style
	Plain  lipgloss.Style
}

// DefaultStyles uses the basic ANSI palette so output follows the
// terminal's own color scheme.
func DefaultStyles() Styles {
	return Styles{
		Start:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Pass:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Fail:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Banner: lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		Detail: lipgloss.NewStyle().Bold(true),
		Plain:  lipgloss.NewStyle(),
	}
}

// PlainStyles renders no escape sequences at all.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Start:  plain,
		Pass:   plain,
		Warn:   plain,
		Fail:   plain,
		Header: plain,
		Banner: plain,
		Detail: plain,
		Plain:  plain,
	}
}
