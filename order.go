// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"log/slog"
	"slices"
	"strings"
)

// notInOrder marks display names absent from custom order.
const notInOrder = -1

// OrderItems returns items in display order.
//
// Items whose display name appears in customOrder come first, ranked by the
// first matching index. Remaining items follow sorted by display name. Equal
// keys keep input order. The input slice is not modified.
func OrderItems(items []Item, customOrder []string) []Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, CompareWithCustomOrder(customOrder))
	return out
}

// CompareWithCustomOrder returns a comparator ranking items by custom order,
// then by display name. It is suitable for slices.SortStableFunc.
func CompareWithCustomOrder(customOrder []string) func(a, b Item) int {
	rank := customOrderIndex(customOrder)

	return func(a, b Item) int {
		indexA := lookupRank(rank, a.DisplayName)
		indexB := lookupRank(rank, b.DisplayName)

		switch {
		case indexA != notInOrder && indexB != notInOrder:
			return indexA - indexB
		case indexA != notInOrder:
			return -1
		case indexB != notInOrder:
			return 1
		default:
			return strings.Compare(a.DisplayName, b.DisplayName)
		}
	}
}

// customOrderIndex maps each display name to its first index in custom order.
func customOrderIndex(customOrder []string) map[string]int {
	rank := make(map[string]int, len(customOrder))
	for index, name := range customOrder {
		if _, exists := rank[name]; exists {
			continue
		}

		rank[name] = index
	}

	return rank
}

// lookupRank returns custom order index or notInOrder.
func lookupRank(rank map[string]int, name string) int {
	if index, ok := rank[name]; ok {
		return index
	}

	return notInOrder
}

// ResolveMembers maps member references to items using lookup.
//
// References are trimmed the same way registry keys are. Unresolved
// references become placeholder items that carry only the canonical
// reference.
func ResolveMembers(lookup Lookup, refs []string, logger *slog.Logger) []Item {
	logger = loggerOrDiscard(logger)

	out := make([]Item, 0, len(refs))
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if lookup != nil {
			if item, ok := lookup(ref); ok {
				out = append(out, item)
				continue
			}
		}

		logger.Warn("unresolved member reference", slog.String("reference", ref))
		out = append(out, Item{CanonicalReference: ref})
	}

	return out
}

// SortedMembers resolves and orders the members of one item.
func SortedMembers(lookup Lookup, item Item, customOrder []string, logger *slog.Logger) []Item {
	members := ResolveMembers(lookup, item.Members, logger)
	return OrderItems(members, customOrder)
}
