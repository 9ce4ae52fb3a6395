package aas

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Format identifies the on-disk encoding of a shell document.
type Format int

const (
	// FormatAuto detects the format from the document contents.
	FormatAuto Format = iota
	// FormatJSON is the canonical JSON form.
	FormatJSON
	// FormatYAML is the YAML tooling form.
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// DetectFormat examines the data to determine its encoding. A document
// whose first non-whitespace byte opens a JSON value is treated as JSON;
// everything else is treated as YAML.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// DecodeYAML parses data as a YAML shell document with the same
// structural requirements as Decode.
func DecodeYAML(data []byte) (*Shell, error) {
	var raw rawShell
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{Cause: err.Error()}
	}
	return raw.build()
}

// EncodeYAML renders the shell as a YAML document.
func EncodeYAML(s *Shell) ([]byte, error) {
	return yaml.Marshal(s)
}

// ParseBytes decodes a shell document, auto-detecting JSON or YAML.
func ParseBytes(data []byte) (*Shell, error) {
	return ParseBytesWithFormat(data, FormatAuto)
}

// ParseBytesWithFormat decodes a shell document in an explicit format.
func ParseBytesWithFormat(data []byte, format Format) (*Shell, error) {
	if format == FormatAuto {
		format = DetectFormat(data)
	}
	if format == FormatYAML {
		return DecodeYAML(data)
	}
	return Decode(data)
}

// ParseFile loads a shell document from the filesystem, auto-detecting
// the format.
func ParseFile(path string) (*Shell, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseBytes(data)
}
