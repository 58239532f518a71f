package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/dm/ceph-eta/internal/format"
	"github.com/dm/ceph-eta/internal/model"
)

// renderMetricCards renders the two tracked-metric cards (Degraded,
// Misplaced) side by side with a "Recovery Progress" section label.
// Each card shows the current count, a recovery progress bar against the
// run baseline, the ETA, the projected completion time, and a sparkline
// of the count over recent polls.
// Returns empty string until the first report is available.
func renderMetricCards(app *App) string {
	if app.run == nil || app.current == nil {
		return ""
	}

	width := app.width
	if width <= 0 {
		width = 80
	}

	label := StyleDim.Render("Recovery Progress")

	cardWidth := width / 2
	if cardWidth < 24 {
		cardWidth = 24
	}

	deg := renderMetricCard(app, "Degraded",
		app.run.Baseline.Degraded, app.current.Degraded,
		app.history.DegradedValues(), cardWidth)
	mis := renderMetricCard(app, "Misplaced",
		app.run.Baseline.Misplaced, app.current.Misplaced,
		app.history.MisplacedValues(), cardWidth)

	if width < 80 {
		return lipgloss.JoinVertical(lipgloss.Left, label, deg, mis)
	}
	return lipgloss.JoinVertical(lipgloss.Left, label,
		lipgloss.JoinHorizontal(lipgloss.Top, deg, mis))
}

// renderMetricCard renders a single tracked-metric card.
//
// Layout (inside a rounded border):
//
//	╭──────────────────────────╮
//	│ Degraded                 │  ← title, severity-colored when elevated
//	│ 1,204 / 50,000 (2.41%)   │  ← bold count line
//	│ ████████░░░░░░░░░░  42%  │  ← recovery progress vs baseline
//	│ ETA: 01:12:30            │
//	│ at 2026-08-27 14:03:11 … │
//	│ ▇▆▅▅▄▃▂▁                 │  ← count sparkline (falling is good)
//	╰──────────────────────────╯
func renderMetricCard(app *App, title string, baselineCount int64, metric model.MetricReport, sparkValues []float64, cardWidth int) string {
	const minCardWidth = 24
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}

	// Inner width = card width minus border (2) and padding (2).
	innerWidth := cardWidth - 6
	if innerWidth < 8 {
		innerWidth = 8
	}

	sev := percentSeverity(metric.Percent)
	accent := severityColor(sev)
	if metric.Complete() {
		accent = colorGreen
	}

	titleLine := severityTitleStyle(sev).Render(title)

	countLine := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(
		fmt.Sprintf("%s / %s (%s)",
			format.Number(metric.Current),
			format.Number(app.run.Baseline.Total),
			format.Percent(metric.Percent)))

	bar := progress.New(progress.WithSolidFill(string(accent)))
	bar.Width = innerWidth
	barLine := bar.ViewAs(recoveredFraction(baselineCount, metric.Current))

	etaLine := StyleDim.Render("ETA: ") + format.ETA(metric.ETASeconds)
	atLine := StyleDim.Render("at  ") + metric.Completion

	sparkLine := RenderSparkline(sparkValues, innerWidth, accent)

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGray).
		Padding(0, 1).
		Width(cardWidth - 4)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleLine,
		countLine,
		barLine,
		etaLine,
		atLine,
		sparkLine,
	))
}

// recoveredFraction returns how much of the baseline count has been worked
// off, in [0, 1]. A baseline of zero counts as fully recovered; a count
// that regressed above its baseline clamps to zero progress.
func recoveredFraction(baseline, current int64) float64 {
	if baseline <= 0 {
		return 1
	}
	f := float64(baseline-current) / float64(baseline)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
