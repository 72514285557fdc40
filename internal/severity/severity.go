// Package severity provides severity level constants for findings reported
// by the checker package.
//
// Both severity levels are exported by each public package that uses them:
//   - SeverityError: Hard conformance violations that fail the run
//   - SeverityWarning: Advisories that never fail the run
package severity

// Severity indicates the severity level of a conformance finding.
type Severity int

const (
	// SeverityError indicates a hard conformance violation.
	// Any error finding makes the overall verdict a failure.
	SeverityError Severity = iota

	// SeverityWarning indicates a soft advisory that should be addressed
	// but does not affect the overall verdict.
	SeverityWarning
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}
