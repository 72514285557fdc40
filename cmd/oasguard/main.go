package main

import (
	"context"
	"fmt"
	"os"

	"github.com/oasguard/oasguard"
	"github.com/oasguard/oasguard/cmd/oasguard/commands"
	"github.com/oasguard/oasguard/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasguard v%s\n", oasguard.Version())
	case "help", "-h", "--help":
		printUsage()
	case "check":
		if err := commands.HandleCheck(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("oasguard - OpenAPI contract conformance checker")
	fmt.Println()
	fmt.Println("Usage: oasguard <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  check      Check a contract document for conformance")
	fmt.Println("  mcp        Run an MCP server exposing the check tool over stdio")
	fmt.Println("  version    Print version information")
	fmt.Println("  help       Show this help message")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  oasguard check                      # conventional location: ../../api/openapi.yaml")
	fmt.Println("  oasguard check api/openapi.yaml")
	fmt.Println("  oasguard check --format json api/openapi.yaml")
	fmt.Println("  cat openapi.yaml | oasguard check -")
	fmt.Println()
	fmt.Println("Run 'oasguard check --help' for command-specific flags.")
}
