// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// OutputFormatJSON encodes order export as JSON.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML encodes order export as YAML.
	OutputFormatYAML OutputFormat = "yaml"
)

// OutputFormat configures encoding of exported member order.
type OutputFormat string

// OrderEntry is one exported ordered item.
type OrderEntry struct {
	CanonicalReference string `json:"canonicalReference" yaml:"canonicalReference"`
	DisplayName        string `json:"displayName" yaml:"displayName"`
	Kind               Kind   `json:"kind" yaml:"kind"`
}

// EncodeOrder encodes already ordered items in selected format.
func EncodeOrder(items []Item, format OutputFormat) ([]byte, error) {
	format, err := normalizeOutputFormat(format)
	if err != nil {
		return nil, err
	}

	entries := make([]OrderEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, OrderEntry{
			CanonicalReference: item.Reference(),
			DisplayName:        item.DisplayName,
			Kind:               item.Kind,
		})
	}

	switch format {
	case OutputFormatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeOrderJSON, err)
		}

		return append(data, '\n'), nil
	case OutputFormatYAML:
		var out bytes.Buffer
		encoder := yaml.NewEncoder(&out)
		encoder.SetIndent(2)
		if err := encoder.Encode(entries); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeOrderYAML, err)
		}

		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeOrderYAML, err)
		}

		return out.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownOutputFormat, format)
	}
}

// normalizeOutputFormat validates output format and falls back to JSON.
func normalizeOutputFormat(format OutputFormat) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(string(format)))) {
	case "", OutputFormatJSON:
		return OutputFormatJSON, nil
	case OutputFormatYAML, "yml":
		return OutputFormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownOutputFormat, format)
	}
}
