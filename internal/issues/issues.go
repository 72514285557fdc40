// Package issues provides the finding type shared by the checker package
// and its reporting surfaces.
package issues

import (
	"fmt"

	"github.com/oasguard/oasguard/internal/severity"
)

// Finding represents a single conformance problem found during a check run.
type Finding struct {
	// Check is the short name of the check that produced the finding
	// (e.g., "operationId-casing")
	Check string
	// Message is a human-readable, self-contained description of the problem,
	// naming the offending method+path or textual pattern where applicable
	Message string
	// Severity indicates the severity level of the finding
	Severity severity.Severity
}

// String returns a formatted string representation of the finding.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
func (f Finding) String() string {
	var symbol string
	switch f.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	default:
		symbol = "?"
	}

	if f.Check != "" {
		return fmt.Sprintf("%s [%s] %s", symbol, f.Check, f.Message)
	}
	return fmt.Sprintf("%s %s", symbol, f.Message)
}
