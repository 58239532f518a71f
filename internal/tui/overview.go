package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/ceph-eta/internal/format"
)

// renderOverview renders the 4-stat overview bar: degraded, misplaced,
// baseline total, and elapsed run time.
// Wide terminals (>= 80 cols): all 4 cards in a single horizontal row.
// Narrow terminals (< 80 cols): cards stacked in rows of 2.
// Returns empty string if no baseline is available yet.
func renderOverview(app *App) string {
	if app.run == nil {
		return ""
	}

	width := app.width
	if width <= 0 {
		width = 80
	}

	narrowMode := width < 80

	var cardWidth int
	if narrowMode {
		cardWidth = (width - 4) / 2
		if cardWidth < 10 {
			cardWidth = 10
		}
	} else {
		cardWidth = (width - 8) / 4
		if cardWidth < 8 {
			cardWidth = 8
		}
	}

	degraded := app.run.Baseline.Degraded
	misplaced := app.run.Baseline.Misplaced
	if app.current != nil {
		degraded = app.current.Snapshot.Degraded
		misplaced = app.current.Snapshot.Misplaced
	}

	degradedPct := percentOfTotal(degraded, app.run.Baseline.Total)
	misplacedPct := percentOfTotal(misplaced, app.run.Baseline.Total)

	card1 := StyleOverviewCard.
		Foreground(severityColor(percentSeverity(degradedPct))).
		Bold(true).
		Width(cardWidth).
		Render(format.Number(degraded) + "\nDegraded")

	card2 := StyleOverviewCard.
		Foreground(severityColor(percentSeverity(misplacedPct))).
		Bold(true).
		Width(cardWidth).
		Render(format.Number(misplaced) + "\nMisplaced")

	card3 := StyleOverviewCard.
		Foreground(colorBlue).
		Width(cardWidth).
		Render(format.Number(app.run.Baseline.Total) + "\nTotal Objects")

	elapsed := time.Duration(0)
	if !app.lastUpdated.IsZero() {
		elapsed = app.run.Elapsed(app.lastUpdated)
	}
	card4 := StyleOverviewCard.
		Foreground(colorPurple).
		Width(cardWidth).
		Render(fmt.Sprintf("%s\nElapsed", format.Duration(elapsed)))

	if narrowMode {
		top := lipgloss.JoinHorizontal(lipgloss.Top, card1, card2)
		bottom := lipgloss.JoinHorizontal(lipgloss.Top, card3, card4)
		return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, card1, card2, card3, card4)
}

// percentOfTotal mirrors the engine's guarded percentage for display.
func percentOfTotal(count, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
