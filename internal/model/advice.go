package model

// AdviceSeverity indicates the urgency level of an advice entry.
type AdviceSeverity int

const (
	AdviceInfo AdviceSeverity = iota
	AdviceWarning
)

// Advice is a single operator-facing observation derived from the current
// report and the run baseline.
type Advice struct {
	Severity AdviceSeverity
	Title    string
	Detail   string
}
