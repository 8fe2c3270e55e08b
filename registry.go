// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"fmt"
	"sort"
)

// Registry is an immutable canonical reference index over model items.
type Registry struct {
	items map[string]Item
}

// NewRegistry indexes items by canonical reference.
// Items without canonical reference use their id; duplicates are rejected.
func NewRegistry(items ...Item) (*Registry, error) {
	index := make(map[string]Item, len(items))
	for position, item := range items {
		ref := item.Reference()
		if ref == "" {
			return nil, fmt.Errorf("%w (item #%d %q)", ErrEmptyReference, position, item.DisplayName)
		}

		if _, exists := index[ref]; exists {
			return nil, fmt.Errorf("%w %q", ErrDuplicateReference, ref)
		}

		item.CanonicalReference = ref
		item.Members = append([]string(nil), item.Members...)
		item.Parameters = append([]Parameter(nil), item.Parameters...)
		if item.Comment != nil {
			comment := *item.Comment
			item.Comment = &comment
		}

		index[ref] = item
	}

	return &Registry{items: index}, nil
}

// Get returns item by canonical reference.
func (r *Registry) Get(ref string) (Item, bool) {
	if r == nil {
		return Item{}, false
	}

	item, ok := r.items[ref]
	return item, ok
}

// Lookup returns the registry as an injectable item lookup.
func (r *Registry) Lookup() Lookup {
	return r.Get
}

// Len returns number of indexed items.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.items)
}

// References returns all canonical references in sorted order.
func (r *Registry) References() []string {
	if r == nil {
		return nil
	}

	out := make([]string, 0, len(r.items))
	for ref := range r.items {
		out = append(out, ref)
	}

	sort.Strings(out)
	return out
}
