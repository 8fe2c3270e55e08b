// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"strings"
	"unicode"
)

const (
	minHeadingLevel = 1
	maxHeadingLevel = 6
	// maxLinkedHeadingLevel is the deepest level linked by default.
	maxLinkedHeadingLevel = 4
)

// HeadingAttrs configures one rendered markdown heading.
type HeadingAttrs struct {
	// ID is emitted as an HTML anchor before the heading.
	ID string
	// Link wraps heading text into a self link to ID.
	Link bool
	// MinVersion appends a "since" tag.
	MinVersion string
}

// HeadingOptions configures item heading rendering.
type HeadingOptions struct {
	Level int
	// Link defaults to Level <= 4 when nil.
	Link *bool
	// Signature renders function-like items with their call signature.
	Signature bool
	// Since appends the item comment since tag.
	Since  bool
	Prefix string
	Suffix string
}

// SubHeadingOptions configures sub-heading rendering.
type SubHeadingOptions struct {
	Level int
	Title string
	// ID overrides the generated anchor id.
	ID string
	// Link defaults to Level <= 4 when nil.
	Link *bool
}

// Heading renders markdown ATX heading with optional anchor, self link and version tag.
func Heading(level int, text string, attrs HeadingAttrs) string {
	level = clampHeadingLevel(level)
	id := strings.TrimSpace(attrs.ID)

	if attrs.Link && id != "" {
		text = "[" + text + "](#" + id + ")"
	}

	if version := strings.TrimSpace(attrs.MinVersion); version != "" {
		text += " " + minVersionTag(version)
	}

	heading := strings.Repeat("#", level) + " " + text
	if id == "" {
		return heading
	}

	return `<a id="` + id + `"></a>` + "\n\n" + heading
}

// ItemHeading renders heading for one API item.
func ItemHeading(item Item, opt HeadingOptions) string {
	level := clampHeadingLevel(opt.Level)
	link := level <= maxLinkedHeadingLevel
	if opt.Link != nil {
		link = *opt.Link
	}

	text := inlineCode(itemLabel(item))
	if opt.Signature && item.Kind.IsFunctionLike() {
		text = inlineCode(FunctionSignature(item, false))
	}

	attrs := HeadingAttrs{Link: link}
	if link {
		attrs.ID = anchorID(itemLabel(item))
	}

	if opt.Since {
		attrs.MinVersion = item.Since()
	}

	return Heading(level, opt.Prefix+text+opt.Suffix, attrs)
}

// SubHeading renders a titled heading scoped to one item.
func SubHeading(item Item, opt SubHeadingOptions) string {
	level := clampHeadingLevel(opt.Level)
	link := level <= maxLinkedHeadingLevel
	if opt.Link != nil {
		link = *opt.Link
	}

	id := strings.TrimSpace(opt.ID)
	if id == "" && link {
		id = anchorID(itemLabel(item), opt.Title)
	}

	return Heading(level, sanitizeText(opt.Title), HeadingAttrs{ID: id, Link: link})
}

// SectionHeading renders an emphasized uppercase section label.
func SectionHeading(text string) string {
	text = sanitizeText(text)
	if text == "" {
		return ""
	}

	return "**" + strings.ToUpper(text) + "**"
}

// SourceLink renders declaring file reference of an item.
// Empty baseURL renders the path without link; items without file render nothing.
func SourceLink(item Item, baseURL string) string {
	file := strings.TrimSpace(item.File)
	if file == "" {
		return ""
	}

	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return "(" + inlineCode(file) + ")"
	}

	return "([" + file + "](" + baseURL + "/" + strings.TrimPrefix(file, "/") + "))"
}

// itemLabel returns the visible item name, falling back to its reference.
func itemLabel(item Item) string {
	if name := strings.TrimSpace(item.DisplayName); name != "" {
		return name
	}

	if ref := item.Reference(); ref != "" {
		return ref
	}

	return "(unnamed)"
}

// anchorID builds a lowercase anchor slug from parts.
// Letters and digits are kept, whitespace, dashes and underscores collapse
// into single dashes, everything else is dropped.
func anchorID(parts ...string) string {
	var out strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(strings.Join(parts, " ")) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			if pendingDash && out.Len() > 0 {
				out.WriteByte('-')
			}

			out.WriteRune(r)
			pendingDash = false
		case unicode.IsSpace(r), r == '-', r == '_':
			pendingDash = true
		}
	}

	return out.String()
}

// minVersionTag renders "since" marker appended to headings.
func minVersionTag(version string) string {
	return "_(since " + version + ")_"
}

// inlineCode wraps text into markdown code span.
// The fence is one backtick longer than the longest backtick run in text,
// since code spans take no backslash escapes.
func inlineCode(text string) string {
	longest, run := 0, 0
	for _, r := range text {
		if r != '`' {
			run = 0
			continue
		}

		run++
		longest = max(longest, run)
	}

	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(text, "`") || strings.HasSuffix(text, "`") ||
		(strings.HasPrefix(text, " ") && strings.HasSuffix(text, " ") && strings.TrimSpace(text) != "") {
		text = " " + text + " "
	}

	return fence + text + fence
}

// clampHeadingLevel keeps heading level inside markdown range.
func clampHeadingLevel(level int) int {
	return min(max(level, minHeadingLevel), maxHeadingLevel)
}
