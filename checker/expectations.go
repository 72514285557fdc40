package checker

// ParameterExpectation names one operation that must document a parameter
// with the given name in its parameters sequence.
type ParameterExpectation struct {
	// Method is the lowercase HTTP method key (e.g., "get")
	Method string
	// Path is the path template exactly as it appears under paths
	Path string
	// Name is the required parameter name, matched case-sensitively
	Name string
}

// ResponseExpectation names one response schema and the baseline set of
// fields its required list must cover.
type ResponseExpectation struct {
	// Method is the lowercase HTTP method key (e.g., "get")
	Method string
	// Path is the path template exactly as it appears under paths
	Path string
	// Status is the response status code key (e.g., "200")
	Status string
	// RequiredFields is the baseline the schema's required list must include
	RequiredFields []string
}

// Expectations holds the hard-coded domain knowledge the checker applies:
// which operations must document which parameters, and which response
// schemas must declare which required fields. The tables are specific to one
// API's shape and are swappable per run via WithExpectations.
type Expectations struct {
	// RequiredParameters lists operations that must carry a named parameter
	RequiredParameters []ParameterExpectation
	// ResponseBaselines lists response schemas with required-field baselines
	ResponseBaselines []ResponseExpectation
}

// DefaultExpectations returns the expectation tables for the example API
// contract this tool ships with: the four user-scoped endpoints that must
// document a userId path parameter, and the four response schemas with
// required-field baselines.
func DefaultExpectations() Expectations {
	return Expectations{
		RequiredParameters: []ParameterExpectation{
			{Method: "get", Path: "/user/{userId}", Name: "userId"},
			{Method: "delete", Path: "/user/{userId}", Name: "userId"},
			{Method: "get", Path: "/user/{userId}/points", Name: "userId"},
			{Method: "post", Path: "/user/{userId}/points", Name: "userId"},
		},
		ResponseBaselines: []ResponseExpectation{
			{Method: "get", Path: "/products", Status: "200", RequiredFields: []string{"products", "total", "limit"}},
			{Method: "get", Path: "/orders", Status: "200", RequiredFields: []string{"orders", "total"}},
			{Method: "get", Path: "/user/{userId}/points", Status: "200", RequiredFields: []string{"loyaltyPoints"}},
			{Method: "post", Path: "/user/{userId}/points", Status: "200", RequiredFields: []string{"remainingPoints"}},
		},
	}
}
