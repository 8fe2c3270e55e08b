// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import "strings"

// Item is one documented API entity from a pre-extracted API model.
type Item struct {
	// CanonicalReference uniquely identifies the item inside a registry.
	CanonicalReference string `json:"canonicalReference,omitempty" yaml:"canonicalReference,omitempty"`
	// ID is an alternative identifier used when CanonicalReference is empty.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
	// DisplayName is the short name shown in headings and member lists.
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	// Kind is the declaration kind.
	Kind Kind `json:"kind" yaml:"kind"`
	// File is the declaring source file path relative to repository root.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	// Members lists canonical references of child items.
	Members []string `json:"members,omitempty" yaml:"members,omitempty"`
	// Comment holds extracted documentation text.
	Comment *Comment `json:"comment,omitempty" yaml:"comment,omitempty"`
	// Parameters lists call parameters of function-like items.
	Parameters []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	// ReturnType is the declared return type of function-like items.
	ReturnType string `json:"returnType,omitempty" yaml:"returnType,omitempty"`
}

// Comment is the documentation attached to one item.
type Comment struct {
	Summary    string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Remarks    string `json:"remarks,omitempty" yaml:"remarks,omitempty"`
	Deprecated string `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	// Since is the first release that contains the item.
	Since string `json:"since,omitempty" yaml:"since,omitempty"`
}

// Parameter is one declared call parameter.
type Parameter struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Optional bool   `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// Lookup resolves canonical references into items.
type Lookup func(ref string) (Item, bool)

// Reference returns canonical reference with fallback to item id.
func (item Item) Reference() string {
	if ref := strings.TrimSpace(item.CanonicalReference); ref != "" {
		return ref
	}

	return strings.TrimSpace(item.ID)
}

// Since returns the since tag of item comment or empty string.
func (item Item) Since() string {
	if item.Comment == nil {
		return ""
	}

	return strings.TrimSpace(item.Comment.Since)
}
