package tui

import "github.com/charmbracelet/lipgloss"

// Color constants — recovery dashboard palette.
var (
	colorGreen  = lipgloss.Color("#10b981")
	colorYellow = lipgloss.Color("#f59e0b")
	colorRed    = lipgloss.Color("#ef4444")
	colorGray   = lipgloss.Color("#6b7280")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorPurple = lipgloss.Color("#8b5cf6")
	colorOrange = lipgloss.Color("#f97316")
	colorWhite  = lipgloss.Color("#f8fafc")
	colorDark   = lipgloss.Color("#1e293b")
	colorAlt    = lipgloss.Color("#0f172a")
)

// StyleHeader — full-width dark header bar.
var StyleHeader = lipgloss.NewStyle().
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

// StyleOverviewCard — bordered card for the overview stat bar.
var StyleOverviewCard = lipgloss.NewStyle().
	Background(colorAlt).
	Foreground(colorWhite).
	Padding(0, 1).
	Align(lipgloss.Center)

// Status styles — bold foreground, used for the run state indicator.
var (
	StyleStatusHealthy    = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	StyleStatusRecovering = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	StyleStatusStalled    = lipgloss.NewStyle().Bold(true).Foreground(colorOrange)
)

// StyleError — red, for disconnected state and error text.
var StyleError = lipgloss.NewStyle().Bold(true).Foreground(colorRed)

// StyleDim — muted gray, for labels and the footer.
var StyleDim = lipgloss.NewStyle().Foreground(colorGray)

// StyleAdviceWarn / StyleAdviceInfo — advice panel lines.
var (
	StyleAdviceWarn = lipgloss.NewStyle().Foreground(colorYellow)
	StyleAdviceInfo = lipgloss.NewStyle().Foreground(colorGray)
)
