// SPDX-License-Identifier: GPL-3.0-only

package geodata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DetectFormat picks a file format from the path extension, defaulting to JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func LoadFile(path string, format Format) ([]Country, error) {
	if path == "" {
		return nil, &LoadError{Source: "<unset>", Err: errEmptyInput}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}

	if format == "" || format == FormatAuto {
		format = DetectFormat(path)
	}

	countries, err := Decode(data, format)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return countries, nil
}

func Decode(data []byte, format Format) ([]Country, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", format)
	}
}

func DecodeJSON(data []byte) ([]Country, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, errEmptyInput
	}
	if trimmed[0] != '[' {
		return nil, errNotSequence
	}

	var countries []Country
	if err := json.Unmarshal(trimmed, &countries); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if countries == nil {
		countries = []Country{}
	}
	return countries, nil
}

func DecodeYAML(data []byte) ([]Country, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errEmptyInput
	}

	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, errNotSequence
	}

	var countries []Country
	if err := root.Decode(&countries); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if countries == nil {
		countries = []Country{}
	}
	return countries, nil
}
