package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oasguard/oasguard/checker"
	"github.com/oasguard/oasguard/loader"
)

// contractInput represents the two ways a contract document can be provided.
// Exactly one of File or Content must be set.
type contractInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to the contract document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline contract document content (YAML)"`
}

// resolve loads the contract from whichever source is set.
func (c contractInput) resolve() (*loader.Document, error) {
	switch {
	case c.File != "" && c.Content != "":
		return nil, fmt.Errorf("exactly one of file or content must be provided (got both)")
	case c.File != "":
		return loader.Load(c.File)
	case c.Content != "":
		return loader.LoadBytes([]byte(c.Content))
	default:
		return nil, fmt.Errorf("exactly one of file or content must be provided (got neither)")
	}
}

type checkInput struct {
	Contract   contractInput `json:"contract"              jsonschema:"The contract document to check"`
	NoWarnings bool          `json:"no_warnings,omitempty" jsonschema:"Suppress warning findings from output"`
}

type checkFinding struct {
	Check    string `json:"check"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

type checkOutput struct {
	Valid          bool           `json:"valid"`
	OpenAPIVersion string         `json:"openapi_version"`
	APIVersion     string         `json:"api_version"`
	EndpointCount  int            `json:"endpoint_count"`
	ErrorCount     int            `json:"error_count"`
	WarningCount   int            `json:"warning_count"`
	Errors         []checkFinding `json:"errors,omitempty"`
	Warnings       []checkFinding `json:"warnings,omitempty"`
}

func handleCheck(_ context.Context, _ *mcp.CallToolRequest, input checkInput) (*mcp.CallToolResult, checkOutput, error) {
	doc, err := input.Contract.resolve()
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}

	result, err := checker.CheckWithOptions(
		checker.WithDocument(doc),
		checker.WithIncludeWarnings(!input.NoWarnings),
	)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}

	output := checkOutput{
		Valid:          result.OK,
		OpenAPIVersion: result.OpenAPIVersion,
		APIVersion:     result.APIVersion,
		EndpointCount:  result.EndpointCount,
		ErrorCount:     result.ErrorCount,
		WarningCount:   result.WarningCount,
	}

	output.Errors = makeSlice[checkFinding](len(result.Errors))
	for _, e := range result.Errors {
		output.Errors = append(output.Errors, checkFinding{
			Check:    e.Check,
			Message:  e.Message,
			Severity: e.Severity.String(),
		})
	}
	output.Warnings = makeSlice[checkFinding](len(result.Warnings))
	for _, w := range result.Warnings {
		output.Warnings = append(output.Warnings, checkFinding{
			Check:    w.Check,
			Message:  w.Message,
			Severity: w.Severity.String(),
		})
	}

	return nil, output, nil
}
