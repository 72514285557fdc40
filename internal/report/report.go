// Package report renders the human-readable transcript of a conformance run.
package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/oasguard/oasguard/checker"
)

// Use golang.org/x/text/cases for proper case conversion (strings.Title is deprecated)
var upperCaser = cases.Upper(language.English)

// writef writes formatted output, ignoring write errors: the transcript goes
// to a console stream and a failed write has nowhere better to be reported.
func writef(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}

// Render writes the full transcript of a conformance run to w: a header, one
// line per check, and a summary block with numbered errors and warnings. On a
// fully clean run it also echoes the endpoint count and the version scalars.
func Render(w io.Writer, toolVersion string, result *checker.Result) {
	writef(w, "OpenAPI Contract Conformance Check\n")
	writef(w, "==================================\n\n")
	writef(w, "oasguard version: %s\n", toolVersion)
	writef(w, "Contract: %s\n", result.SourcePath)
	writef(w, "Size: %d bytes\n\n", result.SourceSize)

	for _, cs := range result.Checks {
		mark := "✓"
		if !cs.Passed {
			mark = "✗"
		}
		writef(w, "%s %s: %s\n", mark, cs.Name, cs.Detail)
	}

	banner := upperCaser.String("Validation Summary")
	writef(w, "\n%s\n%s\n", banner, strings.Repeat("=", len(banner)))

	if len(result.Errors) > 0 {
		writef(w, "\nErrors (%d):\n", result.ErrorCount)
		for i, e := range result.Errors {
			writef(w, "  %d. %s\n", i+1, e.String())
		}
	}

	if len(result.Warnings) > 0 {
		writef(w, "\nWarnings (%d):\n", result.WarningCount)
		for i, warning := range result.Warnings {
			writef(w, "  %d. %s\n", i+1, warning.String())
		}
	}

	switch {
	case result.OK && result.WarningCount == 0:
		writef(w, "\n✓ Contract is fully compliant\n")
		writef(w, "  Endpoints checked: %d\n", result.EndpointCount)
		writef(w, "  OpenAPI version: %s\n", result.OpenAPIVersion)
		writef(w, "  API version: %s\n", result.APIVersion)
	case result.OK:
		writef(w, "\n✓ Conformance check passed with %d warning(s)\n", result.WarningCount)
	default:
		writef(w, "\n✗ Conformance check failed: %d error(s)", result.ErrorCount)
		if result.WarningCount > 0 {
			writef(w, ", %d warning(s)", result.WarningCount)
		}
		writef(w, "\n")
	}
}
