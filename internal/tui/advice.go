package tui

import (
	"strings"

	"github.com/dm/ceph-eta/internal/model"
)

// renderAdvice renders the operator advice panel, one line per entry.
// Returns empty string when there is nothing to say.
func renderAdvice(app *App) string {
	if len(app.advice) == 0 {
		return ""
	}

	var lines []string
	for _, a := range app.advice {
		style := StyleAdviceInfo
		marker := "·"
		if a.Severity == model.AdviceWarning {
			style = StyleAdviceWarn
			marker = "!"
		}
		lines = append(lines, style.Render(marker+" "+a.Title+" — "+a.Detail))
	}
	return strings.Join(lines, "\n")
}
