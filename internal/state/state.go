package state

import (
	"strings"

	"modscan/internal/config"
	"modscan/internal/domain"
	"modscan/internal/services"
)

type Filter string

const (
	FilterAll      Filter = "all"
	FilterEnabled  Filter = "enabled"
	FilterDisabled Filter = "disabled"
	FilterUnlisted Filter = "unlisted"
)

type Preferences struct {
	SortMode domain.SortMode
	Theme    string
}

type State struct {
	Path        string
	Cursor      int
	Prefs       Preferences
	Collection  *services.Collection
	KeyBindings map[string]string
	SearchQuery string
	Filter      Filter
}

func NewState(cfg config.Config, path string) *State {
	return &State{
		Path:   path,
		Cursor: 0,
		Prefs: Preferences{
			SortMode: cfg.SortMode,
			Theme:    cfg.Theme,
		},
		KeyBindings: ensureBindings(cfg.KeyBindings),
		SearchQuery: "",
		Filter:      FilterAll,
	}
}

func ensureBindings(bindings map[string]string) map[string]string {
	if bindings == nil {
		return map[string]string{}
	}
	return bindings
}

// SetCollection replaces the browsed inventory, keeping the cursor on the
// same package when it still exists.
func (appState *State) SetCollection(collection services.Collection) {
	previous, hadPrevious := appState.CurrentRow()
	appState.Collection = &collection
	appState.Path = collection.RootPath
	appState.Cursor = 0
	if !hadPrevious {
		return
	}
	for index, row := range appState.VisibleRows() {
		if row.Name == previous.Name {
			appState.Cursor = index
			return
		}
	}
}

func (appState *State) VisibleRows() []services.Row {
	if appState.Collection == nil {
		return nil
	}
	rows := make([]services.Row, 0, len(appState.Collection.Report.Rows))
	for _, row := range appState.Collection.Report.Rows {
		if appState.rowMatches(row) {
			rows = append(rows, row)
		}
	}
	services.SortRows(rows, appState.Prefs.SortMode)
	return rows
}

func (appState *State) CurrentRow() (services.Row, bool) {
	visible := appState.VisibleRows()
	if len(visible) == 0 || appState.Cursor < 0 || appState.Cursor >= len(visible) {
		return services.Row{}, false
	}
	return visible[appState.Cursor], true
}

func (appState *State) MoveCursor(delta int) bool {
	visible := appState.VisibleRows()
	next := appState.Cursor + delta
	if next < 0 || next >= len(visible) {
		return false
	}
	appState.Cursor = next
	return true
}

func (appState *State) ClampCursor() {
	visible := appState.VisibleRows()
	if appState.Cursor >= len(visible) {
		appState.Cursor = len(visible) - 1
	}
	if appState.Cursor < 0 {
		appState.Cursor = 0
	}
}

func (appState *State) ToggleSortMode() domain.SortMode {
	switch appState.Prefs.SortMode {
	case domain.SortByState:
		appState.Prefs.SortMode = domain.SortByName
	case domain.SortByName:
		appState.Prefs.SortMode = domain.SortByVersions
	default:
		appState.Prefs.SortMode = domain.SortByState
	}
	appState.ClampCursor()
	return appState.Prefs.SortMode
}

func (appState *State) CycleFilter() Filter {
	switch appState.Filter {
	case FilterAll:
		appState.Filter = FilterEnabled
	case FilterEnabled:
		appState.Filter = FilterDisabled
	case FilterDisabled:
		appState.Filter = FilterUnlisted
	default:
		appState.Filter = FilterAll
	}
	appState.Cursor = 0
	return appState.Filter
}

func (appState *State) SetSearch(query string) {
	appState.SearchQuery = query
	appState.ClampCursor()
}

func (appState *State) ClearFilters() {
	appState.SearchQuery = ""
	appState.Filter = FilterAll
	appState.ClampCursor()
}

func (appState *State) Filtering() bool {
	return appState.SearchQuery != "" || appState.Filter != FilterAll
}

func (appState *State) rowMatches(row services.Row) bool {
	switch appState.Filter {
	case FilterEnabled:
		if row.Enabled != domain.Enabled {
			return false
		}
	case FilterDisabled:
		if row.Enabled != domain.Disabled {
			return false
		}
	case FilterUnlisted:
		if row.Enabled != domain.Unlisted {
			return false
		}
	}
	if appState.SearchQuery != "" {
		query := strings.ToLower(appState.SearchQuery)
		if !strings.Contains(strings.ToLower(row.Name), query) {
			return false
		}
	}
	return true
}
