package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runOn(t *testing.T, contract string) *Result {
	t.Helper()
	return New().Check(mustLoad(t, contract))
}

func TestOperationIDCasingScan(t *testing.T) {
	tests := []struct {
		name      string
		contract  string
		wantCount int
	}{
		{
			name:      "clean document",
			contract:  "paths:\n  /a:\n    get:\n      operationId: getA\n",
			wantCount: 0,
		},
		{
			name:      "single typo",
			contract:  "paths:\n  /a:\n    get:\n      operationID: getA\n",
			wantCount: 1,
		},
		{
			name:      "multiple typos counted together",
			contract:  "paths:\n  /a:\n    get:\n      operationID: getA\n    post:\n      operationID: makeA\n",
			wantCount: 2,
		},
		{
			name:      "correct casing elsewhere is not flagged",
			contract:  "info:\n  description: operationId values are lowercase d\n",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := runOn(t, tt.contract)
			found := findingsFor(result.Errors, CheckOperationIDCasing)
			if tt.wantCount == 0 {
				assert.Empty(t, found)
				return
			}
			require.Len(t, found, 1, "occurrences aggregate into one finding")
			assert.Contains(t, found[0].Message, "should be 'operationId:'")
		})
	}
}

func TestParametersCasingScan(t *testing.T) {
	tests := []struct {
		name     string
		contract string
		flagged  bool
	}{
		{
			name:     "lowercase parameters is clean",
			contract: "paths:\n  /a:\n  parameters:\n",
			flagged:  false,
		},
		{
			name:     "capitalized at two-space indent is flagged",
			contract: "paths:\n  Parameters:\n    - name: x\n",
			flagged:  true,
		},
		{
			name: "deeper indentation is not the path-level pattern",
			// Operation-level keys sit at six spaces; the scan targets the
			// two-space path level only.
			contract: "paths:\n  /a:\n    get:\n      Parameters:\n",
			flagged:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := runOn(t, tt.contract)
			found := findingsFor(result.Errors, CheckParametersCasing)
			if !tt.flagged {
				assert.Empty(t, found)
				return
			}
			require.Len(t, found, 1)
			assert.Contains(t, found[0].Message, "should be 'parameters:'")
		})
	}
}

func TestOperationIDCompletenessCounting(t *testing.T) {
	contract := `paths:
  /orders:
    parameters:
      - name: traceId
    get:
      operationId: listOrders
    post:
      operationId: createOrder
  /ping:
    get:
      summary: no id here
`
	result := runOn(t, contract)

	assert.Equal(t, 3, result.EndpointCount)

	found := findingsFor(result.Errors, CheckOperationIDCompleteness)
	require.Len(t, found, 1)
	assert.Contains(t, found[0].Message, "Found 1 endpoints without operationId: GET /ping")
}

func TestRequiredParameterMatching(t *testing.T) {
	tests := []struct {
		name     string
		contract string
		missing  bool
	}{
		{
			name: "documented parameter",
			contract: `paths:
  /user/{userId}:
    get:
      parameters:
        - name: userId
          in: path
`,
			missing: false,
		},
		{
			name: "no parameters list",
			contract: `paths:
  /user/{userId}:
    get:
      operationId: getUser
`,
			missing: true,
		},
		{
			name: "name match is case-sensitive",
			contract: `paths:
  /user/{userId}:
    get:
      parameters:
        - name: userid
          in: path
`,
			missing: true,
		},
		{
			name: "non-mapping entries are skipped without crashing",
			contract: `paths:
  /user/{userId}:
    get:
      parameters:
        - just-a-string
        - name: userId
          in: path
`,
			missing: false,
		},
	}

	exp := Expectations{
		RequiredParameters: []ParameterExpectation{
			{Method: "get", Path: "/user/{userId}", Name: "userId"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.Expectations = exp

			var result *Result
			require.NotPanics(t, func() {
				result = c.Check(mustLoad(t, tt.contract))
			})

			found := findingsFor(result.Errors, CheckRequiredParameters)
			if !tt.missing {
				assert.Empty(t, found)
				return
			}
			require.Len(t, found, 1)
			assert.Contains(t, found[0].Message, "GET /user/{userId} (userId)")
		})
	}
}

func TestResponseBaselineSetDifference(t *testing.T) {
	exp := Expectations{
		ResponseBaselines: []ResponseExpectation{
			{Method: "get", Path: "/products", Status: "200", RequiredFields: []string{"products", "total", "limit"}},
		},
	}

	tests := []struct {
		name         string
		required     string
		wantMissing  string
		wantFindings int
	}{
		{
			name:         "exact baseline",
			required:     "[products, total, limit]",
			wantFindings: 0,
		},
		{
			name:         "superset is fine",
			required:     "[products, total, limit, page]",
			wantFindings: 0,
		},
		{
			name:         "one gap",
			required:     "[products, limit]",
			wantMissing:  "total",
			wantFindings: 1,
		},
		{
			name:         "empty list misses everything",
			required:     "[]",
			wantMissing:  "products, total, limit",
			wantFindings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contract := `paths:
  /products:
    get:
      responses:
        "200":
          content:
            application/json:
              schema:
                required: ` + tt.required + "\n"

			c := New()
			c.Expectations = exp
			result := c.Check(mustLoad(t, contract))

			assert.Empty(t, findingsFor(result.Errors, CheckResponseBaselines), "baseline gaps are never errors")
			warnings := findingsFor(result.Warnings, CheckResponseBaselines)
			require.Len(t, warnings, tt.wantFindings)
			if tt.wantFindings > 0 {
				assert.Contains(t, warnings[0].Message, "GET /products 200")
				assert.Contains(t, warnings[0].Message, tt.wantMissing)
			}
		})
	}
}

func TestResponseBaselineMissingNavigationSteps(t *testing.T) {
	// Each truncated document exercises one defensive default in the
	// responses navigation chain.
	tests := []struct {
		name     string
		contract string
	}{
		{"no responses", "paths:\n  /products:\n    get:\n      operationId: listProducts\n"},
		{"no matching status", "paths:\n  /products:\n    get:\n      responses:\n        \"404\": {}\n"},
		{"no content", "paths:\n  /products:\n    get:\n      responses:\n        \"200\": {}\n"},
		{"wrong media type", "paths:\n  /products:\n    get:\n      responses:\n        \"200\":\n          content:\n            text/plain: {}\n"},
		{"no schema", "paths:\n  /products:\n    get:\n      responses:\n        \"200\":\n          content:\n            application/json: {}\n"},
	}

	exp := Expectations{
		ResponseBaselines: []ResponseExpectation{
			{Method: "get", Path: "/products", Status: "200", RequiredFields: []string{"total"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.Expectations = exp

			var result *Result
			require.NotPanics(t, func() {
				result = c.Check(mustLoad(t, tt.contract))
			})

			warnings := findingsFor(result.Warnings, CheckResponseBaselines)
			require.Len(t, warnings, 1, "a missing navigation step means the baseline is uncovered")
			assert.Contains(t, warnings[0].Message, "total")
		})
	}
}

func TestNavigationHelpers(t *testing.T) {
	m := map[string]any{
		"mapping": map[string]any{"inner": "x"},
		"seq":     []any{"a", 1, "b"},
		"scalar":  "value",
	}

	assert.Equal(t, map[string]any{"inner": "x"}, mapAt(m, "mapping"))
	assert.Nil(t, mapAt(m, "scalar"), "non-mapping values resolve to nil")
	assert.Nil(t, mapAt(m, "absent"))
	assert.Nil(t, mapAt(nil, "anything"))

	assert.Equal(t, []any{"a", 1, "b"}, sliceAt(m, "seq"))
	assert.Nil(t, sliceAt(m, "scalar"))
	assert.Nil(t, sliceAt(nil, "anything"))

	assert.Equal(t, "value", stringAt(m, "scalar"))
	assert.Empty(t, stringAt(m, "mapping"))
	assert.Empty(t, stringAt(nil, "anything"))

	set := stringSet([]any{"a", 1, "b", nil})
	assert.Equal(t, map[string]bool{"a": true, "b": true}, set)
}
