package ingestion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// StdinPath selects standard input as the document source
const StdinPath = "-"

// stdin is swapped in tests
var stdin io.Reader = os.Stdin

// SourceFormat is the serialization of a document source
type SourceFormat string

// Supported source formats
const (
	SourceJSON SourceFormat = "json"
	SourceYAML SourceFormat = "yaml"
)

// DetectFormat picks the source format from the file extension. Standard input
// and unknown extensions are sniffed: content starting with "{" is JSON.
func DetectFormat(path string, content []byte) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceJSON
	case ".yaml", ".yml":
		return SourceYAML
	}
	if bytes.HasPrefix(bytes.TrimSpace(content), []byte("{")) {
		return SourceJSON
	}
	return SourceYAML
}

// ReadSource reads the raw bytes of path, or standard input for "-".
func ReadSource(path string) ([]byte, error) {
	if path == StdinPath {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, &LoadError{Path: "stdin", Message: "failed to read", Cause: err}
		}
		return content, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Path: path, Message: "file not found", Cause: err}
		}
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	return content, nil
}

// ReadJSON reads a document source and returns it as JSON, converting YAML
// so that both formats validate against the same schema.
func ReadJSON(path string) ([]byte, error) {
	content, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, &LoadError{Path: path, Message: "document is empty"}
	}

	if DetectFormat(path, content) == SourceJSON {
		return content, nil
	}

	converted, err := YAMLToJSON(content)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "invalid YAML", Cause: err}
	}
	return converted, nil
}

// DecodeDocument decodes JSON into a document and normalizes its line endings.
func DecodeDocument(data []byte) (*types.ResumeDocument, error) {
	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid document JSON: %w", err)
	}
	NormalizeDocument(&doc)
	return &doc, nil
}

// LoadDocument reads a JSON or YAML document from path, or standard input for "-".
func LoadDocument(path string) (*types.ResumeDocument, error) {
	data, err := ReadJSON(path)
	if err != nil {
		return nil, err
	}
	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to decode document", Cause: err}
	}
	return doc, nil
}
