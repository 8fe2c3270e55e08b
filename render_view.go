// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"fmt"
	"log/slog"
	"strings"
)

// buildEnumView prepares data for markdown template rendering.
func buildEnumView(lookup Lookup, ref string, opt Options) (enumView, error) {
	if lookup == nil {
		return enumView{}, ErrNilLookup
	}

	ref = strings.TrimSpace(ref)
	item, ok := lookup(ref)
	if !ok {
		return enumView{}, fmt.Errorf("%w %q", ErrItemNotFound, ref)
	}

	logger := loggerOrDiscard(opt.Logger).With(slog.String("reference", ref))
	if item.Kind != KindEnum && item.Kind != KindUnknown {
		logger.Warn("rendering non-enum item as enum", slog.String("kind", item.Kind.String()))
	}

	level := normalizeHeadingLevel(opt.HeadingLevel)
	memberLevel := clampHeadingLevel(level + 1)
	wrapWidth := normalizeWrapWidth(opt.WrapWidth)
	listMarker := normalizeListMarker(opt.ListMarker)

	membersTitle := sanitizeText(opt.MembersTitle)
	if membersTitle == "" {
		membersTitle = defaultMembersTitle
	}

	view := enumView{
		Name:           escapeInline(itemLabel(item)),
		Reference:      escapeInline(item.Reference()),
		Kind:           item.Kind.String(),
		Heading:        ItemHeading(item, HeadingOptions{Level: level, Since: opt.Since}),
		SourceLink:     SourceLink(item, opt.SourceBaseURL),
		SectionHeading: SectionHeading(membersTitle),
		ListMarker:     listMarker,
		Doc:            buildDocView(item, wrapWidth, listMarker),
	}

	if view.Doc.Remarks != "" {
		view.Doc.RemarksHeading = SubHeading(item, SubHeadingOptions{
			Level: memberLevel,
			Title: remarksTitle,
		})
	}

	members := SortedMembers(lookup, item, opt.CustomOrder, logger)
	logger.Debug("ordered enum members", slog.Int("members", len(members)), slog.Int("custom_order", len(opt.CustomOrder)))

	view.HasMembers = len(members) > 0
	view.Members = make([]memberView, 0, len(members))
	for _, member := range members {
		attrs := HeadingAttrs{}
		if memberLevel <= maxLinkedHeadingLevel {
			attrs.ID = anchorID(itemLabel(item), itemLabel(member))
			attrs.Link = true
		}

		if opt.Since {
			attrs.MinVersion = member.Since()
		}

		view.Members = append(view.Members, memberView{
			Name:      inlineCode(itemLabel(member)),
			Reference: escapeInline(member.Reference()),
			Heading:   Heading(memberLevel, inlineCode(itemLabel(member)), attrs),
			Doc:       buildDocView(member, wrapWidth, listMarker),
		})
	}

	return view, nil
}

// buildDocView formats comment text of one item.
func buildDocView(item Item, wrapWidth int, listMarker string) docView {
	if item.Comment == nil {
		return docView{}
	}

	comment := item.Comment
	view := docView{
		Summary:    formatDescriptionMarkdown(comment.Summary, wrapWidth, listMarker),
		Remarks:    formatDescriptionMarkdown(comment.Remarks, wrapWidth, listMarker),
		Deprecated: sanitizeText(comment.Deprecated),
		Since:      sanitizeText(comment.Since),
	}

	inline := sanitizeText(comment.Summary)
	if view.Deprecated != "" {
		inline = strings.TrimSpace("**Deprecated:** " + view.Deprecated + " " + inline)
	}

	view.Inline = escapeTableCell(inline)
	return view
}

// normalizeHeadingLevel validates heading level and falls back to default.
func normalizeHeadingLevel(value int) int {
	if value <= 0 {
		return defaultHeadingLevel
	}

	return clampHeadingLevel(value)
}
