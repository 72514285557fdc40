// Package checker implements the conformance rule engine for a contract
// document loaded by the loader package.
//
// A check run executes a fixed, ordered list of independent checks. Two are
// textual scans over the raw document (wrong-cased key names are invisible to
// the parsed tree, which simply fails to recognize them as the intended
// field); three are structural checks over the generic YAML tree. Every
// navigation step into the tree substitutes an empty value for a missing or
// mistyped node, so a defect in one part of the document never aborts the run.
//
// Findings are classified by severity: errors fail the verdict, warnings
// never do. The per-run expectation tables (which endpoints must document
// which parameter, which response schemas must declare which required fields)
// are configuration, not check logic; see Expectations.
package checker
