package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"modscan/internal/services"
	"modscan/internal/state"
)

type Collector interface {
	Collect(ctx context.Context, req services.CollectRequest) (services.Collection, error)
}

type Model struct {
	state       *state.State
	collector   Collector
	request     services.CollectRequest
	keys        KeyMap
	showHelp    bool
	status      string
	scanning    bool
	scanSeq     int
	cancel      context.CancelFunc
	width       int
	height      int
	viewTop     int
	searching   bool
	searchInput string
	searchPrior string
}

func NewModel(appState *state.State, collector Collector, request services.CollectRequest) Model {
	return Model{
		state:     appState,
		collector: collector,
		request:   request,
		keys:      KeyMapWith(appState.KeyBindings),
		status:    "Ready - press r to rescan",
		width:     100,
		height:    30,
	}
}

func (model Model) WithStatus(message string) Model {
	if message != "" {
		model.status = message
	}
	return model
}

func (model Model) Init() tea.Cmd {
	return nil
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return model.handleKey(typed)
	case tea.WindowSizeMsg:
		model.width = typed.Width
		model.height = typed.Height
		model.ensureCursorVisible()
		return model, nil
	case scanResultMsg:
		if typed.seq != model.scanSeq {
			return model, nil
		}
		model.scanning = false
		model.cancel = nil
		if typed.err != nil {
			if errors.Is(typed.err, context.Canceled) {
				model.status = "Scan cancelled"
				return model, nil
			}
			model.status = fmt.Sprintf("Scan error: %v", typed.err)
			return model, nil
		}
		model.state.SetCollection(typed.collection)
		model.status = fmt.Sprintf("Scan complete (%s)", typed.collection.Duration)
		model.ensureCursorVisible()
		return model, nil
	default:
		return model, nil
	}
}

func (model Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.searching {
		return model.handleSearchInput(msg)
	}
	switch {
	case key.Matches(msg, model.keys.Quit):
		model = model.cancelScan("")
		return model, tea.Quit
	case key.Matches(msg, model.keys.Help):
		model.showHelp = !model.showHelp
		return model, nil
	case key.Matches(msg, model.keys.Up):
		if model.state.MoveCursor(-1) {
			model.ensureCursorVisible()
		}
		return model, nil
	case key.Matches(msg, model.keys.Down):
		if model.state.MoveCursor(1) {
			model.ensureCursorVisible()
		}
		return model, nil
	case key.Matches(msg, model.keys.Top):
		model.state.Cursor = 0
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.Bottom):
		model.state.Cursor = len(model.state.VisibleRows()) - 1
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.Sort):
		mode := model.state.ToggleSortMode()
		model.status = fmt.Sprintf("Order: %s", mode)
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.Filter):
		filter := model.state.CycleFilter()
		model.status = fmt.Sprintf("Showing: %s", filter)
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.Search):
		model.searching = true
		model.searchPrior = model.state.SearchQuery
		model.searchInput = model.state.SearchQuery
		model.status = fmt.Sprintf("Search: %s", model.searchInput)
		return model, nil
	case key.Matches(msg, model.keys.ClearFilter):
		model.state.ClearFilters()
		model.status = "Filters cleared"
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.Refresh):
		return model.beginScan()
	default:
		return model, nil
	}
}

func (model Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Confirm):
		model.searching = false
		model.status = fmt.Sprintf("Search: %s", model.searchInput)
		return model, nil
	case key.Matches(msg, model.keys.Cancel):
		model.searching = false
		model.state.SetSearch(model.searchPrior)
		model.status = "Search cancelled"
		model.ensureCursorVisible()
		return model, nil
	case msg.Type == tea.KeyCtrlC:
		model = model.cancelScan("")
		return model, tea.Quit
	case msg.Type == tea.KeyBackspace || msg.Type == tea.KeyDelete:
		if runes := []rune(model.searchInput); len(runes) > 0 {
			model.searchInput = string(runes[:len(runes)-1])
		}
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		model.searchInput += string(msg.Runes)
	default:
		return model, nil
	}
	model.state.SetSearch(model.searchInput)
	model.status = fmt.Sprintf("Search: %s", model.searchInput)
	model.ensureCursorVisible()
	return model, nil
}

func (model Model) beginScan() (Model, tea.Cmd) {
	model = model.cancelScan("")
	if model.collector == nil {
		model.status = "Scan unavailable"
		return model, nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	model.cancel = cancel
	model.scanning = true
	model.scanSeq++
	model.status = fmt.Sprintf("Scanning... %s", model.request.RootPath)
	return model, model.scanCmd(ctx)
}

func (model Model) scanCmd(ctx context.Context) tea.Cmd {
	collector := model.collector
	request := model.request
	seq := model.scanSeq
	return func() tea.Msg {
		collection, err := collector.Collect(ctx, request)
		return scanResultMsg{seq: seq, collection: collection, err: err}
	}
}

func (model Model) cancelScan(message string) Model {
	if model.cancel != nil {
		model.cancel()
		model.cancel = nil
	}
	if message != "" {
		model.status = message
	}
	model.scanning = false
	return model
}

func (model *Model) ensureCursorVisible() {
	visible := model.state.VisibleRows()
	if len(visible) == 0 {
		model.state.Cursor = 0
		model.viewTop = 0
		return
	}
	model.state.ClampCursor()
	listHeight := model.listHeight()
	if listHeight <= 0 {
		return
	}
	if model.state.Cursor < model.viewTop {
		model.viewTop = model.state.Cursor
	}
	if model.state.Cursor >= model.viewTop+listHeight {
		model.viewTop = model.state.Cursor - listHeight + 1
	}
	maxTop := maxInt(len(visible)-listHeight, 0)
	if model.viewTop > maxTop {
		model.viewTop = maxTop
	}
}

func (model *Model) listHeight() int {
	return model.height - 6
}
