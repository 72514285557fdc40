package checker

import (
	"fmt"

	"github.com/oasguard/oasguard/internal/issues"
	"github.com/oasguard/oasguard/internal/severity"
	"github.com/oasguard/oasguard/loader"
)

// Severity indicates the severity level of a conformance finding
type Severity = severity.Severity

const (
	// SeverityError indicates a hard conformance violation that fails the verdict
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a soft advisory that never fails the verdict
	SeverityWarning = severity.SeverityWarning
)

// Finding represents a single conformance finding
type Finding = issues.Finding

// Names of the checks in the order they run. Exposed so reporting surfaces
// can reference checks without duplicating the strings.
const (
	CheckOperationIDCasing       = "operationId-casing"
	CheckParametersCasing        = "parameters-casing"
	CheckOperationIDCompleteness = "operationId-completeness"
	CheckRequiredParameters      = "required-parameters"
	CheckResponseBaselines       = "response-baselines"
)

const (
	// defaultErrorCapacity is the initial capacity for error slices
	defaultErrorCapacity = 4
	// defaultWarningCapacity is the initial capacity for warning slices
	defaultWarningCapacity = 4
)

// CheckStatus records the outcome of one named check within a run.
type CheckStatus struct {
	// Name is the check name (one of the Check* constants)
	Name string
	// Passed is true if the check produced no findings
	Passed bool
	// Detail is a one-line human-readable outcome for the transcript
	Detail string
}

// Result contains the verdict of one conformance run.
type Result struct {
	// OK is true if no errors were found (warnings are allowed)
	OK bool
	// OpenAPIVersion is the echoed top-level openapi scalar
	OpenAPIVersion string
	// APIVersion is the echoed info.version scalar
	APIVersion string
	// EndpointCount is the number of method entries counted under paths,
	// excluding path-level "parameters" keys and non-mapping values
	EndpointCount int
	// Errors contains all error findings
	Errors []Finding
	// Warnings contains all warning findings
	Warnings []Finding
	// ErrorCount is the total number of errors
	ErrorCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// Checks records each check's pass/fail outcome in run order
	Checks []CheckStatus
	// SourcePath is the source path of the checked document
	SourcePath string
	// SourceSize is the size of the checked document in bytes
	SourceSize int64
}

// Checker runs the conformance checks against a loaded contract document.
type Checker struct {
	// IncludeWarnings determines whether warning findings are reported
	IncludeWarnings bool
	// Expectations are the per-run expectation tables
	Expectations Expectations
}

// New creates a new Checker with default settings and the default
// expectation tables.
func New() *Checker {
	return &Checker{
		IncludeWarnings: true,
		Expectations:    DefaultExpectations(),
	}
}

// Check runs every conformance check against doc and aggregates the verdict.
// The checks are independent: findings from one never prevent the rest from
// running, and the engine itself never fails. Running Check twice on the
// same document produces identical results.
func (c *Checker) Check(doc *loader.Document) *Result {
	result := &Result{
		Errors:     make([]Finding, 0, defaultErrorCapacity),
		Warnings:   make([]Finding, 0, defaultWarningCapacity),
		SourcePath: doc.SourcePath,
		SourceSize: doc.SourceSize,
	}

	raw := doc.Text()
	root := doc.Root

	result.OpenAPIVersion = stringAt(root, "openapi")
	result.APIVersion = stringAt(mapAt(root, "info"), "version")

	c.checkOperationIDCasing(raw, result)
	c.checkParametersCasing(raw, result)
	c.checkOperationIDCompleteness(root, result)
	c.checkRequiredParameters(root, result)
	c.checkResponseBaselines(root, result)

	result.ErrorCount = len(result.Errors)
	result.WarningCount = len(result.Warnings)
	result.OK = result.ErrorCount == 0

	if !c.IncludeWarnings {
		result.Warnings = nil
		result.WarningCount = 0
	}

	return result
}

// CheckWithOptions runs the conformance checks using functional options.
// This combines input source selection and configuration in a single call.
//
// Example:
//
//	result, err := checker.CheckWithOptions(
//	    checker.WithFilePath("api/openapi.yaml"),
//	    checker.WithIncludeWarnings(false),
//	)
func CheckWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("checker: invalid options: %w", err)
	}

	c := &Checker{
		IncludeWarnings: cfg.includeWarnings,
		Expectations:    DefaultExpectations(),
	}
	if cfg.expectations != nil {
		c.Expectations = *cfg.expectations
	}

	doc := cfg.document
	if doc == nil {
		// cfg.filePath must be non-nil here (validated by applyOptions)
		doc, err = loader.Load(*cfg.filePath)
		if err != nil {
			return nil, fmt.Errorf("checker: failed to load contract: %w", err)
		}
	}

	return c.Check(doc), nil
}

// addError appends an error finding produced by the named check.
func (c *Checker) addError(result *Result, check, message string) {
	result.Errors = append(result.Errors, Finding{
		Check:    check,
		Message:  message,
		Severity: SeverityError,
	})
}

// addWarning appends a warning finding produced by the named check.
func (c *Checker) addWarning(result *Result, check, message string) {
	result.Warnings = append(result.Warnings, Finding{
		Check:    check,
		Message:  message,
		Severity: SeverityWarning,
	})
}

// recordCheck appends a per-check outcome to the run transcript.
func (c *Checker) recordCheck(result *Result, name string, passed bool, detail string) {
	result.Checks = append(result.Checks, CheckStatus{
		Name:   name,
		Passed: passed,
		Detail: detail,
	})
}
