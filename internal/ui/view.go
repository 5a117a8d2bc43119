package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"modscan/internal/domain"
	"modscan/internal/render"
	"modscan/internal/services"
)

type uiStyles struct {
	render.Styles
	statusStyle lipgloss.Style
	cursorStyle lipgloss.Style
	panelBorder lipgloss.Style
}

func stylesFor(model Model) uiStyles {
	base := render.StylesFor(model.state.Prefs.Theme)
	if strings.ToLower(model.state.Prefs.Theme) == "light" {
		return uiStyles{
			Styles:      base,
			statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
			cursorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("90")).Bold(true),
			panelBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		}
	}
	return uiStyles{
		Styles:      base,
		statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true),
		cursorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		panelBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

func (model Model) View() string {
	styles := stylesFor(model)
	if model.showHelp {
		return renderHelpView(model, styles)
	}
	body := renderBody(model, styles)
	footer := renderFooter(model, styles)
	return strings.Join([]string{body, footer}, "\n")
}

func renderBody(model Model, styles uiStyles) string {
	visible := model.state.VisibleRows()
	bodyHeight := maxInt(model.listHeight(), 3)

	leftWidth, rightWidth, showRight := splitPanels(model.width)
	left := renderListPanel(model, styles, visible, bodyHeight, leftWidth)
	if !showRight {
		return left
	}
	sep := lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render("│")
	right := renderDetailPanel(model, styles, rightWidth, bodyHeight)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, sep, right)
}

func renderListPanel(model Model, styles uiStyles, visible []services.Row, height, width int) string {
	contentWidth := maxInt(width-2, 10)
	status := "IDLE"
	if model.scanning {
		status = "SCANNING"
	}
	headerLine := padLine(styles.Header.Render("modscan")+"  "+model.state.Path, styles.statusStyle.Render(status), contentWidth-2)
	lines := make([]string, 0, height+1)
	lines = append(lines, headerLine)
	if len(visible) == 0 {
		message := "No packages"
		if model.state.Filtering() {
			message = "No packages match the filters - x clears them"
		}
		lines = append(lines, styles.Muted.Render(message))
	}

	start := clamp(model.viewTop, 0, maxInt(len(visible)-1, 0))
	end := minInt(start+height, len(visible))
	nameWidth := 0
	for _, row := range visible[start:end] {
		nameWidth = maxInt(nameWidth, lipgloss.Width(row.Name))
	}
	for index := start; index < end; index++ {
		row := visible[index]
		line := fmt.Sprintf("%s %-*s  %s", row.Enabled.Marker(), nameWidth, row.Name, row.Version)
		if row.VersionCount > 1 {
			line += fmt.Sprintf(" (+%d)", row.VersionCount-1)
		}
		if index == model.state.Cursor {
			line = styles.cursorStyle.Render(line)
		} else {
			line = styles.ForState(row.Enabled).Render(line)
		}
		lines = append(lines, line)
	}
	for len(lines) < height+1 {
		lines = append(lines, "")
	}
	return styles.panelBorder.Width(contentWidth).Render(strings.Join(lines, "\n"))
}

func renderDetailPanel(model Model, styles uiStyles, width, height int) string {
	contentWidth := maxInt(width-2, 10)
	lines := []string{}
	if row, ok := model.state.CurrentRow(); ok {
		lines = append(lines,
			styles.Header.Render(row.Name),
			styles.ForState(row.Enabled).Render(stateLabel(row.Enabled)),
			"",
			styles.Header.Render("Versions"),
		)
		for index := len(row.Versions) - 1; index >= 0; index-- {
			lines = append(lines, fmt.Sprintf("%s  %s", row.Versions[index], styles.Muted.Render(row.Files[index])))
		}
		lines = append(lines, "")
	} else {
		lines = append(lines, "No selection", "")
	}
	if model.state.Collection != nil {
		lines = append(lines, styles.Header.Render("Folder"))
		lines = append(lines, render.SummaryLines(model.state.Collection.Report.Summary)...)
		if names := model.state.Collection.Report.UnrecognizedNames; len(names) > 0 {
			lines = append(lines, "", styles.Warn.Render("Unrecognized"))
			lines = append(lines, names...)
		}
	}
	content := lipgloss.NewStyle().Width(contentWidth - 2).Height(height + 1).Render(strings.Join(lines, "\n"))
	return styles.panelBorder.Width(contentWidth).Render(content)
}

func renderFooter(model Model, styles uiStyles) string {
	statusStyle := styles.Muted
	lower := strings.ToLower(model.status)
	if strings.Contains(lower, "error") || strings.Contains(lower, "warning") {
		statusStyle = styles.Warn
	}
	statusLine := statusStyle.Render(trimStatus(model.status, model.width))

	left := fmt.Sprintf("Rows: %d  Order: %s  Showing: %s%s",
		len(model.state.VisibleRows()),
		strings.ToUpper(string(model.state.Prefs.SortMode)),
		model.state.Filter,
		searchSummary(model),
	)
	keys := "↑/↓ move  o order  f state  / search  x clear  r rescan  ? help  q quit"
	if model.searching {
		keys = "type to search  enter keep  esc cancel"
	}
	return strings.Join([]string{statusLine, styles.Muted.Render(padLine(left, keys, model.width))}, "\n")
}

func renderHelpView(model Model, styles uiStyles) string {
	bindings := []key.Binding{
		model.keys.Up,
		model.keys.Down,
		model.keys.Top,
		model.keys.Bottom,
		model.keys.Sort,
		model.keys.Filter,
		model.keys.Search,
		model.keys.ClearFilter,
		model.keys.Refresh,
		model.keys.Help,
		model.keys.Quit,
	}
	lines := []string{styles.Header.Render("modscan help"), ""}
	lines = append(lines, styles.Header.Render("Markers"))
	lines = append(lines, "[x] enabled", "[ ] disabled", "[?] not in the mod list")
	lines = append(lines, "", styles.Header.Render("Keys"))
	for _, binding := range bindings {
		keysLabel := strings.Join(binding.Keys(), ", ")
		lines = append(lines, fmt.Sprintf("%-18s %s", keysLabel, binding.Help().Desc))
	}
	lines = append(lines, "", "Press ? to close help")
	width := model.width
	if width <= 0 {
		width = 80
	}
	return styles.panelBorder.Width(maxInt(width-2, 10)).Render(strings.Join(lines, "\n"))
}

func stateLabel(state domain.Enablement) string {
	switch state {
	case domain.Enabled:
		return "Enabled"
	case domain.Disabled:
		return "Disabled"
	default:
		return "Not in mod list"
	}
}

func searchSummary(model Model) string {
	if model.state.SearchQuery == "" {
		return ""
	}
	return fmt.Sprintf("  Search[%s]", model.state.SearchQuery)
}

func padLine(left, right string, width int) string {
	if width <= 0 {
		return left
	}
	space := width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", space) + right
}

func splitPanels(width int) (int, int, bool) {
	if width < 80 {
		return width, 0, false
	}
	left := maxInt(int(float64(width)*0.6), 40)
	right := width - left - 1
	if right < 30 {
		return width, 0, false
	}
	return left, right, true
}

func trimStatus(message string, width int) string {
	if width <= 0 {
		return message
	}
	limit := width - 4
	if limit <= 0 || lipgloss.Width(message) <= limit {
		return message
	}
	runes := []rune(message)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
