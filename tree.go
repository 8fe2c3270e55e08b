// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/disiqueira/gotree/v3"
)

// maxTreeDepth bounds member nesting rendered by RenderTree.
const maxTreeDepth = 20

// RenderTree renders item and its ordered members as a text tree.
// customOrder applies to every nesting level. Members already expanded
// elsewhere in the tree, reference cycles and members of non-container kinds
// are printed as leaves.
func RenderTree(lookup Lookup, ref string, customOrder []string, logger *slog.Logger) (string, error) {
	if lookup == nil {
		return "", ErrNilLookup
	}

	ref = strings.TrimSpace(ref)
	root, ok := lookup(ref)
	if !ok {
		return "", fmt.Errorf("%w %q", ErrItemNotFound, ref)
	}

	builder := treeBuilder{
		lookup:      lookup,
		customOrder: customOrder,
		logger:      loggerOrDiscard(logger),
		active:      make(map[string]struct{}),
		expanded:    make(map[string]struct{}),
	}

	tree := gotree.New(treeLabel(root))
	builder.addMembers(tree, root, 0)
	return tree.Print(), nil
}

// treeBuilder walks member references depth-first.
type treeBuilder struct {
	lookup      Lookup
	logger      *slog.Logger
	active      map[string]struct{}
	expanded    map[string]struct{}
	customOrder []string
}

// addMembers appends ordered members of item under node.
func (b *treeBuilder) addMembers(node gotree.Tree, item Item, depth int) {
	if depth >= maxTreeDepth {
		return
	}

	ref := item.Reference()
	b.active[ref] = struct{}{}
	b.expanded[ref] = struct{}{}
	defer delete(b.active, ref)

	for _, member := range SortedMembers(b.lookup, item, b.customOrder, b.logger) {
		child := node.Add(treeLabel(member))
		memberRef := member.Reference()

		if _, cycle := b.active[memberRef]; cycle {
			b.logger.Warn("member reference cycle", slog.String("reference", memberRef))
			continue
		}

		if _, seen := b.expanded[memberRef]; seen {
			continue
		}

		if len(member.Members) == 0 {
			continue
		}

		if !member.Kind.IsContainer() && member.Kind != KindUnknown {
			b.logger.Debug("members of non-container item skipped",
				slog.String("reference", memberRef),
				slog.String("kind", member.Kind.String()),
			)
			continue
		}

		b.addMembers(child, member, depth+1)
	}
}

// treeLabel renders one tree node label.
func treeLabel(item Item) string {
	return itemLabel(item) + " [" + item.Kind.String() + "]"
}
