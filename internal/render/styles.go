package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"modscan/internal/domain"
)

type Styles struct {
	Header   lipgloss.Style
	Muted    lipgloss.Style
	Enabled  lipgloss.Style
	Disabled lipgloss.Style
	Unlisted lipgloss.Style
	Warn     lipgloss.Style
}

func StylesFor(theme string) Styles {
	if strings.ToLower(theme) == "light" {
		return Styles{
			Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
			Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			Enabled:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
			Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			Unlisted: lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
			Warn:     lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
		}
	}
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Enabled:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Unlisted: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Warn:     lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
	}
}

func (styles Styles) ForState(state domain.Enablement) lipgloss.Style {
	switch state {
	case domain.Enabled:
		return styles.Enabled
	case domain.Disabled:
		return styles.Disabled
	default:
		return styles.Unlisted
	}
}
