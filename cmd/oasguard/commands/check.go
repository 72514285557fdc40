package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/oasguard/oasguard"
	"github.com/oasguard/oasguard/checker"
	"github.com/oasguard/oasguard/internal/report"
	"github.com/oasguard/oasguard/loader"
)

// CheckFlags contains flags for the check command
type CheckFlags struct {
	NoWarnings bool
	Quiet      bool
	Format     string
}

// SetupCheckFlags creates and configures a FlagSet for the check command.
// Returns the FlagSet and a CheckFlags struct with bound flag variables.
func SetupCheckFlags() (*flag.FlagSet, *CheckFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &CheckFlags{}

	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning findings (only show errors)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only the exit code, no transcript")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only the exit code, no transcript")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasguard check [flags] [file|-]\n\n")
		Writef(fs.Output(), "Check an OpenAPI contract document for conformance.\n\n")
		Writef(fs.Output(), "With no file argument the conventional contract location is used:\n")
		Writef(fs.Output(), "two directories up from the oasguard executable, under api/openapi.yaml.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasguard check\n")
		Writef(fs.Output(), "  oasguard check api/openapi.yaml\n")
		Writef(fs.Output(), "  oasguard check --no-warnings api/openapi.yaml\n")
		Writef(fs.Output(), "  cat openapi.yaml | oasguard check -q -\n")
		Writef(fs.Output(), "  oasguard check --format json api/openapi.yaml | jq '.OK'\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Contract conforms (warnings permitted)\n")
		Writef(fs.Output(), "  1    Error findings, or the contract could not be loaded\n")
	}

	return fs, flags
}

// HandleCheck executes the check command
func HandleCheck(args []string) error {
	fs, flags := SetupCheckFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("check command takes at most one file path or '-' for stdin")
	}

	// Validate format flag early to fail fast before loading the contract
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	contractPath := fs.Arg(0)
	if contractPath == "" {
		var err error
		contractPath, err = DefaultContractPath()
		if err != nil {
			return err
		}
	}

	var result *checker.Result
	var err error

	if contractPath == StdinFilePath {
		doc, loadErr := loader.LoadReader(os.Stdin)
		if loadErr != nil {
			return fmt.Errorf("loading stdin: %w", loadErr)
		}
		result, err = checker.CheckWithOptions(
			checker.WithDocument(doc),
			checker.WithIncludeWarnings(!flags.NoWarnings),
		)
	} else {
		result, err = checker.CheckWithOptions(
			checker.WithFilePath(contractPath),
			checker.WithIncludeWarnings(!flags.NoWarnings),
		)
	}
	if err != nil {
		return err
	}

	// Handle structured output formats
	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(result, flags.Format); err != nil {
			return err
		}
		if !result.OK {
			os.Exit(1)
		}
		return nil
	}

	// Text transcript goes to stderr so structured pipelines stay clean
	if !flags.Quiet {
		report.Render(os.Stderr, oasguard.Version(), result)
	}

	if !result.OK {
		os.Exit(1)
	}

	return nil
}
