package checker

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// jsonMediaType is the only media type inspected by the response checks.
const jsonMediaType = "application/json"

// The casing checks scan the raw text, not the parsed tree: a wrong-cased
// key is simply not recognized as the intended field by the parser, so a
// structural check would never see it.
var (
	// reWrongOperationID matches the common 'operationID:' typo (wrong
	// capitalization of the "Id" suffix).
	reWrongOperationID = regexp.MustCompile(`operationID:`)

	// reWrongParameters matches a capitalized 'Parameters:' key at two-space
	// indentation, the depth of a path-level parameters block.
	reWrongParameters = regexp.MustCompile(`\n  Parameters:`)
)

// checkOperationIDCasing flags every occurrence of the literal 'operationID:'
// typo in the raw document text.
func (c *Checker) checkOperationIDCasing(raw string, result *Result) {
	matches := reWrongOperationID.FindAllStringIndex(raw, -1)
	if len(matches) > 0 {
		c.addError(result, CheckOperationIDCasing,
			fmt.Sprintf("Found %d instances of incorrect 'operationID:' (should be 'operationId:')", len(matches)))
		c.recordCheck(result, CheckOperationIDCasing, false,
			fmt.Sprintf("%d incorrect 'operationID:' occurrences", len(matches)))
		return
	}
	c.recordCheck(result, CheckOperationIDCasing, true,
		"all operationId properties use correct lowercase 'Id'")
}

// checkParametersCasing flags every occurrence of a wrong-cased path-level
// 'Parameters:' key in the raw document text.
func (c *Checker) checkParametersCasing(raw string, result *Result) {
	matches := reWrongParameters.FindAllStringIndex(raw, -1)
	if len(matches) > 0 {
		c.addError(result, CheckParametersCasing,
			fmt.Sprintf("Found %d instances of incorrect 'Parameters:' (should be 'parameters:')", len(matches)))
		c.recordCheck(result, CheckParametersCasing, false,
			fmt.Sprintf("%d incorrect 'Parameters:' occurrences", len(matches)))
		return
	}
	c.recordCheck(result, CheckParametersCasing, true,
		"all parameters properties use correct lowercase")
}

// checkOperationIDCompleteness counts every endpoint under paths and flags
// those lacking an operationId field. A method key of "parameters" is a
// path-level parameter block, not an endpoint, and non-mapping values are
// skipped.
func (c *Checker) checkOperationIDCompleteness(root map[string]any, result *Result) {
	var missing []string
	total := 0

	for path, methodsAny := range mapAt(root, "paths") {
		methods, ok := methodsAny.(map[string]any)
		if !ok {
			continue
		}
		for method, detailsAny := range methods {
			if method == "parameters" {
				continue
			}
			details, ok := detailsAny.(map[string]any)
			if !ok {
				continue
			}
			total++
			if _, ok := details["operationId"]; !ok {
				missing = append(missing, strings.ToUpper(method)+" "+path)
			}
		}
	}

	// Map iteration order is random; sort so repeated runs report identically.
	slices.Sort(missing)
	result.EndpointCount = total

	if len(missing) > 0 {
		c.addError(result, CheckOperationIDCompleteness,
			fmt.Sprintf("Found %d endpoints without operationId: %s", len(missing), strings.Join(missing, ", ")))
		c.recordCheck(result, CheckOperationIDCompleteness, false,
			fmt.Sprintf("%d of %d endpoints missing operationId", len(missing), total))
		return
	}
	c.recordCheck(result, CheckOperationIDCompleteness, true,
		fmt.Sprintf("all %d endpoints have operationId defined", total))
}

// checkRequiredParameters verifies that every operation named in the
// RequiredParameters table documents its required parameter. An absent or
// malformed parameters sequence counts as the parameter being absent.
func (c *Checker) checkRequiredParameters(root map[string]any, result *Result) {
	var missing []string

	for _, exp := range c.Expectations.RequiredParameters {
		op := mapAt(mapAt(mapAt(root, "paths"), exp.Path), exp.Method)
		if !hasNamedParameter(sliceAt(op, "parameters"), exp.Name) {
			missing = append(missing, fmt.Sprintf("%s %s (%s)", strings.ToUpper(exp.Method), exp.Path, exp.Name))
		}
	}

	if len(missing) > 0 {
		c.addError(result, CheckRequiredParameters,
			fmt.Sprintf("Found %d endpoints missing a required parameter: %s", len(missing), strings.Join(missing, ", ")))
		c.recordCheck(result, CheckRequiredParameters, false,
			fmt.Sprintf("%d of %d endpoints missing their required parameter", len(missing), len(c.Expectations.RequiredParameters)))
		return
	}
	c.recordCheck(result, CheckRequiredParameters, true,
		fmt.Sprintf("all %d user-scoped endpoints document their required parameter", len(c.Expectations.RequiredParameters)))
}

// hasNamedParameter reports whether params contains a mapping entry whose
// name field equals name. Non-mapping entries are tolerated and skipped.
func hasNamedParameter(params []any, name string) bool {
	for _, p := range params {
		pm, ok := p.(map[string]any)
		if !ok {
			continue
		}
		if pn, _ := pm["name"].(string); pn == name {
			return true
		}
	}
	return false
}

// checkResponseBaselines verifies each response baseline in the
// ResponseBaselines table: the schema's declared required list must cover the
// expected fields. Gaps are advisory, one warning per baseline.
func (c *Checker) checkResponseBaselines(root map[string]any, result *Result) {
	gaps := 0

	for _, exp := range c.Expectations.ResponseBaselines {
		op := mapAt(mapAt(mapAt(root, "paths"), exp.Path), exp.Method)
		media := mapAt(mapAt(mapAt(mapAt(op, "responses"), exp.Status), "content"), jsonMediaType)
		declared := stringSet(sliceAt(mapAt(media, "schema"), "required"))

		var missing []string
		for _, field := range exp.RequiredFields {
			if !declared[field] {
				missing = append(missing, field)
			}
		}

		if len(missing) > 0 {
			gaps++
			c.addWarning(result, CheckResponseBaselines,
				fmt.Sprintf("%s %s %s: response schema missing expected required fields: %s",
					strings.ToUpper(exp.Method), exp.Path, exp.Status, strings.Join(missing, ", ")))
		}
	}

	if gaps > 0 {
		c.recordCheck(result, CheckResponseBaselines, false,
			fmt.Sprintf("%d of %d response schemas missing expected required fields", gaps, len(c.Expectations.ResponseBaselines)))
		return
	}
	c.recordCheck(result, CheckResponseBaselines, true,
		fmt.Sprintf("all %d checked response schemas have required fields defined", len(c.Expectations.ResponseBaselines)))
}

// mapAt returns the mapping at m[key], or nil when m is nil, the key is
// absent, or the value is not a mapping.
func mapAt(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	v, _ := m[key].(map[string]any)
	return v
}

// sliceAt returns the sequence at m[key], or nil when m is nil, the key is
// absent, or the value is not a sequence.
func sliceAt(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	v, _ := m[key].([]any)
	return v
}

// stringAt returns the scalar string at m[key], or "" when absent.
func stringAt(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	v, _ := m[key].(string)
	return v
}

// stringSet collects the string entries of a sequence into a set.
// Non-string entries are skipped.
func stringSet(seq []any) map[string]bool {
	set := make(map[string]bool, len(seq))
	for _, v := range seq {
		if s, ok := v.(string); ok {
			set[s] = true
		}
	}
	return set
}
