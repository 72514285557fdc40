package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/oasguard/oasguard/guarderrors"
)

// Document is a loaded contract document: the parsed generic tree plus the
// original raw text the textual checks scan.
type Document struct {
	// Root is the parsed top-level mapping. Nil when the document is empty;
	// consumers must tolerate missing keys at every level.
	Root map[string]any
	// Raw is the original document text, unmodified.
	Raw []byte
	// SourcePath identifies where the document came from.
	SourcePath string
	// SourceSize is the size of the raw document in bytes.
	SourceSize int64
}

// Text returns the raw document as a string.
func (d *Document) Text() string {
	return string(d.Raw)
}

// Load reads and parses the contract document at path.
// Returns *guarderrors.NotFoundError when the file does not exist and
// *guarderrors.SyntaxError when the text is not valid YAML.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, guarderrors.NewNotFoundError(path, err)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return parse(data, path)
}

// LoadReader reads and parses a contract document from r.
// Note: since there is no actual file path, Document.SourcePath is set to "LoadReader.yaml".
func LoadReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return parse(data, "LoadReader.yaml")
}

// LoadBytes parses a contract document from data that is already in memory.
func LoadBytes(data []byte) (*Document, error) {
	return parse(data, "LoadBytes.yaml")
}

func parse(data []byte, sourcePath string) (*Document, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, guarderrors.NewSyntaxError(sourcePath, err)
	}

	return &Document{
		Root:       root,
		Raw:        data,
		SourcePath: sourcePath,
		SourceSize: int64(len(data)),
	}, nil
}
