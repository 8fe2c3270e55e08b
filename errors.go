// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import "errors"

var (
	// ErrReadModelFile is returned when API model file loading fails.
	ErrReadModelFile = errors.New("read model file")
	// ErrDecodeModel is returned when API model decoding fails.
	ErrDecodeModel = errors.New("decode model")
	// ErrUnknownModelFormat is returned when API model format is not supported.
	ErrUnknownModelFormat = errors.New("unknown model format")
	// ErrEmptyReference is returned when a model item has neither canonical reference nor id.
	ErrEmptyReference = errors.New("item has empty canonical reference")
	// ErrDuplicateReference is returned when two model items share one canonical reference.
	ErrDuplicateReference = errors.New("duplicate canonical reference")
	// ErrItemNotFound is returned when requested canonical reference is not present in lookup.
	ErrItemNotFound = errors.New("item not found")
	// ErrNilLookup is returned when rendering is requested without an item lookup.
	ErrNilLookup = errors.New("item lookup is nil")
	// ErrExecuteMarkdownTemplate is returned when markdown template execution fails.
	ErrExecuteMarkdownTemplate = errors.New("execute markdown template")
	// ErrParseCustomTemplate is returned when caller-provided template text fails to parse.
	ErrParseCustomTemplate = errors.New("parse custom template")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrParseBuiltinTemplate is returned when built-in template parsing fails.
	ErrParseBuiltinTemplate = errors.New("parse built-in template")
	// ErrUnknownOutputFormat is returned when order export format is not supported.
	ErrUnknownOutputFormat = errors.New("unknown output format")
	// ErrEncodeOrderJSON is returned when order export JSON encoding fails.
	ErrEncodeOrderJSON = errors.New("encode order json")
	// ErrEncodeOrderYAML is returned when order export YAML encoding fails.
	ErrEncodeOrderYAML = errors.New("encode order yaml")
)
