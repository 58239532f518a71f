package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/dm/ceph-eta/internal/engine"
	"github.com/dm/ceph-eta/internal/localtime"
	"github.com/dm/ceph-eta/internal/model"
	"github.com/dm/ceph-eta/internal/status"
)

type connState int

const (
	stateConnected    connState = iota
	stateDisconnected connState = iota
)

// App is the root Bubble Tea model for the recovery dashboard.
type App struct {
	source       status.Source
	conv         localtime.Converter
	pollInterval time.Duration

	// Poll state
	fetching bool // true while a fetchCmd goroutine is in-flight
	run      *model.RunState
	current  *model.Report
	advice   []model.Advice
	history  *model.History

	// Connection state
	connState        connState
	consecutiveFails int
	lastError        error
	lastUpdated      time.Time

	// Layout
	width, height int

	// UI state
	showHelp bool
}

// NewApp creates a new App with the given status source, local time
// converter, and poll interval.
func NewApp(source status.Source, conv localtime.Converter, interval time.Duration) *App {
	return &App{
		source:       source,
		conv:         conv,
		pollInterval: interval,
		history:      model.NewHistory(0),
		connState:    stateDisconnected,
		fetching:     true, // Init() always issues an immediate fetchCmd
	}
}

// Init implements tea.Model. Starts the first fetch immediately on launch.
func (app *App) Init() tea.Cmd {
	return fetchCmd(app.source, app.conv, nil, app.pollInterval)
}

// Update implements tea.Model — the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height

	case BaselineMsg:
		// First successful snapshot establishes the immutable run baseline.
		app.fetching = false
		run := model.NewRunState(msg.Snapshot, msg.Snapshot.FetchedAt)
		app.run = &run
		app.history.Push(model.HistoryPoint{
			Timestamp: msg.Snapshot.FetchedAt,
			Degraded:  msg.Snapshot.Degraded,
			Misplaced: msg.Snapshot.Misplaced,
		})
		app.consecutiveFails = 0
		app.lastError = nil
		app.connState = stateConnected
		app.lastUpdated = msg.Snapshot.FetchedAt
		return app, tickCmd(app.pollInterval)

	case ReportMsg:
		app.fetching = false
		report := msg.Report
		app.current = &report
		app.advice = msg.Advice
		app.history.Push(model.HistoryPoint{
			Timestamp: report.Snapshot.FetchedAt,
			Degraded:  report.Snapshot.Degraded,
			Misplaced: report.Snapshot.Misplaced,
		})
		app.consecutiveFails = 0
		app.lastError = nil
		app.connState = stateConnected
		app.lastUpdated = report.Snapshot.FetchedAt
		return app, tickCmd(app.pollInterval)

	case FetchErrorMsg:
		app.fetching = false
		app.consecutiveFails++
		app.lastError = msg.Err
		app.connState = stateDisconnected
		backoff := backoffDuration(app.consecutiveFails)
		return app, tea.Tick(backoff, func(t time.Time) tea.Msg {
			return TickMsg(t)
		})

	case TickMsg:
		if app.fetching {
			return app, nil
		}
		app.fetching = true
		return app, fetchCmd(app.source, app.conv, app.run, app.pollInterval)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return app, tea.Quit
		case key.Matches(msg, keys.Refresh):
			if app.fetching {
				return app, nil
			}
			app.fetching = true
			return app, fetchCmd(app.source, app.conv, app.run, app.pollInterval)
		case key.Matches(msg, keys.Help):
			app.showHelp = !app.showHelp
		}
	}

	return app, nil
}

// View implements tea.Model. Renders the full dashboard.
func (app *App) View() string {
	var parts []string

	if h := renderHeader(app); h != "" {
		parts = append(parts, h)
	}
	if o := renderOverview(app); o != "" {
		parts = append(parts, o)
	}
	if c := renderMetricCards(app); c != "" {
		parts = append(parts, c)
	}
	if a := renderAdvice(app); a != "" {
		parts = append(parts, a)
	}
	parts = append(parts, renderFooter(app))

	return strings.Join(parts, "\n")
}

// tickCmd schedules the next poll after duration d.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fetchCmd is a Bubble Tea command that runs the status command once and
// returns a BaselineMsg (no run established yet), a ReportMsg with derived
// metrics, or a FetchErrorMsg.
func fetchCmd(source status.Source, conv localtime.Converter, run *model.RunState, interval time.Duration) tea.Cmd {
	return func() tea.Msg {
		timeout := interval - 500*time.Millisecond
		if timeout < 500*time.Millisecond {
			timeout = 500 * time.Millisecond
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		snap, err := source.Fetch(ctx)
		if err != nil {
			return FetchErrorMsg{Err: err}
		}

		if run == nil {
			return BaselineMsg{Snapshot: snap}
		}

		// The screen belongs to Bubble Tea; conversion fallbacks surface
		// through the report itself, not a logger.
		report := engine.BuildReport(*run, snap, snap.FetchedAt, conv, zerolog.Nop())
		return ReportMsg{
			Report: report,
			Advice: engine.CalcAdvice(*run, report),
		}
	}
}

// backoffDuration returns min(2^fails * time.Second, 60*time.Second).
// At fails=1: 2s, fails=2: 4s, fails=3: 8s, ..., fails>=6: 60s.
func backoffDuration(fails int) time.Duration {
	const maxBackoff = 60 * time.Second
	if fails <= 0 {
		return time.Second
	}
	if fails >= 6 {
		return maxBackoff
	}
	return time.Duration(1<<fails) * time.Second
}
