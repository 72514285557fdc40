// Package oasguard provides a static conformance checker for an API's
// OpenAPI contract document.
//
// oasguard loads a single OpenAPI YAML document and runs a fixed, ordered
// list of lexical and structural conformance checks against it, reporting
// findings classified as errors or warnings.
//
// # Overview
//
// The module consists of two primary packages:
//
//   - loader: Load and parse the contract document into a generic YAML tree
//   - checker: Run the conformance checks and aggregate a verdict
//
// The checks cover field-name casing (textual scans over the raw document),
// operationId completeness across all endpoints, required path parameters on
// user-scoped endpoints, and response schema required-field baselines.
//
// # Quick Start
//
// Check a contract document:
//
//	import "github.com/oasguard/oasguard/checker"
//
//	result, err := checker.CheckWithOptions(
//		checker.WithFilePath("api/openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.OK {
//		for _, e := range result.Errors {
//			fmt.Println(e.String())
//		}
//	}
//
// Load and check separately when the raw document is needed for other work:
//
//	import (
//		"github.com/oasguard/oasguard/checker"
//		"github.com/oasguard/oasguard/loader"
//	)
//
//	doc, err := loader.Load("api/openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result := checker.New().Check(doc)
//
// # Command Line
//
// The oasguard command wraps the library:
//
//	oasguard check api/openapi.yaml
//	oasguard check --format json api/openapi.yaml
//	cat openapi.yaml | oasguard check -
//
// With no argument, check resolves the conventional contract location two
// directories up from the executable, under api/openapi.yaml.
package oasguard
