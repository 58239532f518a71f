package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top header bar.
//
// Layout:
//
//	left:   status command (or "Waiting for <cmd>..." before the baseline)
//	center: colored "● RECOVERING / HEALTHY / STALLED" indicator
//	        (or "● DISCONNECTED  <error>" when the command is failing)
//	right:  "Last: HH:MM:SS  Poll: Ns" (or "Press r to retry" when offline)
func renderHeader(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	var left, center, right string

	if app.run == nil {
		// No baseline yet — initial state.
		left = "Waiting for " + app.source.Describe() + "..."

		if app.connState == stateDisconnected && app.lastError != nil {
			center = StyleError.Render("● DISCONNECTED  " + truncateError(app.lastError.Error()))
			right = StyleError.Render("Press r to retry")
		}
	} else {
		left = app.source.Describe()

		if app.connState == stateDisconnected {
			// Lost the status command after a successful baseline.
			errDisplay := "● DISCONNECTED"
			if app.lastError != nil {
				errDisplay += "  " + truncateError(app.lastError.Error())
			}
			center = StyleError.Render(errDisplay)
			right = StyleError.Render("Press r to retry")
		} else {
			center = runStateIndicator(app)

			lastStr := "..."
			if !app.lastUpdated.IsZero() {
				lastStr = app.lastUpdated.Format("15:04:05")
			}
			right = StyleDim.Render(fmt.Sprintf("Last: %s  Poll: %s", lastStr, formatInterval(app.pollInterval)))
		}
	}

	// Build row: left + padding + center + padding + right, filling innerWidth.
	// StyleHeader has Padding(0, 1) so inner content width = total width - 2.
	innerWidth := width - 2
	spacing := innerWidth - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if spacing < 0 {
		spacing = 0
	}
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing

	row := left +
		strings.Repeat(" ", leftSpacing) +
		center +
		strings.Repeat(" ", rightSpacing) +
		right

	return StyleHeader.Width(width).Render(row)
}

// runStateIndicator classifies the run for the header center slot.
func runStateIndicator(app *App) string {
	switch {
	case app.current != nil && app.current.Done():
		return StyleStatusHealthy.Render("● HEALTHY")
	case app.current != nil && app.current.Degraded.Stalled() && app.current.Misplaced.Stalled():
		return StyleStatusStalled.Render("● STALLED")
	case app.run != nil && app.run.Baseline.Healthy() && app.current == nil:
		return StyleStatusHealthy.Render("● HEALTHY")
	default:
		return StyleStatusRecovering.Render("● RECOVERING")
	}
}

func truncateError(msg string) string {
	if len(msg) > 40 {
		return msg[:40] + "..."
	}
	return msg
}

// formatInterval formats a poll interval as a compact string, e.g. "10s" or "2m".
func formatInterval(d time.Duration) string {
	if d >= time.Minute {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
