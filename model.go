// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ModelFormatAuto detects JSON by leading brace or bracket and falls back to YAML.
	ModelFormatAuto ModelFormat = ""
	// ModelFormatJSON decodes model as JSON.
	ModelFormatJSON ModelFormat = "json"
	// ModelFormatYAML decodes model as YAML.
	ModelFormatYAML ModelFormat = "yaml"
)

// ModelFormat selects API model document encoding.
type ModelFormat string

// modelDocument is the on-disk API model layout; JSON also accepts a bare item array.
type modelDocument struct {
	Items []Item `json:"items" yaml:"items"`
}

// LoadModelFile reads API model from file and indexes it into a registry.
// Format is selected by file extension, unknown extensions are auto-detected.
func LoadModelFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadModelFile, err)
	}

	return ParseModel(data, modelFormatFromPath(path))
}

// ParseModel decodes API model bytes and indexes items into a registry.
func ParseModel(data []byte, format ModelFormat) (*Registry, error) {
	format, err := normalizeModelFormat(format)
	if err != nil {
		return nil, err
	}

	if format == ModelFormatAuto {
		format = detectModelFormat(data)
	}

	var doc modelDocument
	switch format {
	case ModelFormatJSON:
		var target any = &doc
		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
			target = &doc.Items
		}

		if err := json.Unmarshal(data, target); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeModel, err)
		}
	case ModelFormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeModel, err)
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownModelFormat, format)
	}

	return NewRegistry(doc.Items...)
}

// normalizeModelFormat validates model format name.
func normalizeModelFormat(format ModelFormat) (ModelFormat, error) {
	switch ModelFormat(strings.ToLower(strings.TrimSpace(string(format)))) {
	case ModelFormatAuto:
		return ModelFormatAuto, nil
	case ModelFormatJSON:
		return ModelFormatJSON, nil
	case ModelFormatYAML, "yml":
		return ModelFormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownModelFormat, format)
	}
}

// modelFormatFromPath maps file extension to model format.
func modelFormatFromPath(path string) ModelFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ModelFormatJSON
	case ".yaml", ".yml":
		return ModelFormatYAML
	default:
		return ModelFormatAuto
	}
}

// detectModelFormat inspects the first meaningful byte of model data.
func detectModelFormat(data []byte) ModelFormat {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return ModelFormatJSON
	}

	return ModelFormatYAML
}
