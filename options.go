// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import "log/slog"

// Options configures markdown page rendering.
type Options struct {
	// Logger receives diagnostics about degraded model data. Nil discards them.
	Logger *slog.Logger

	// TemplateName selects built-in template ("list" or "table").
	TemplateName string
	// TemplateText overrides built-in template with custom text/template source.
	TemplateText string
	// SourceBaseURL prefixes item file paths in source links.
	SourceBaseURL string
	// MembersTitle overrides members section label.
	MembersTitle string
	// ListMarker is the unordered list marker used in normalized descriptions ("*" or "-").
	ListMarker string

	// CustomOrder lists member display names rendered first, in this order.
	CustomOrder []string

	// HeadingLevel is the level of the page item heading, members go one level deeper.
	HeadingLevel int
	// WrapWidth wraps plain description paragraphs; zero uses default width.
	WrapWidth int

	// Since appends "since" tags from item comments to headings.
	Since bool
}
