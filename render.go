// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// defaultHeadingLevel is used when caller does not provide heading level.
	defaultHeadingLevel = 2
	// defaultTemplateName is used when caller does not provide template name.
	defaultTemplateName = "list"
	// defaultWrapWidth wraps plain description paragraphs at this width.
	defaultWrapWidth = 80
	// defaultListMarker is used when caller does not provide list marker style.
	defaultListMarker = "*"
	// defaultMembersTitle labels enum member section.
	defaultMembersTitle = "Enumeration Members"
	// remarksTitle labels remarks sub-heading of page item.
	remarksTitle = "Remarks"
)

const (
	templateListName  = "list"
	templateTableName = "table"
)

// enumView is the root view model passed to markdown templates.
type enumView struct {
	Name           string
	Reference      string
	Kind           string
	Heading        string
	SourceLink     string
	SectionHeading string
	ListMarker     string
	Doc            docView
	Members        []memberView
	HasMembers     bool
}

// memberView represents one ordered enum member.
type memberView struct {
	Name      string
	Reference string
	Heading   string
	Doc       docView
}

// docView is rendered documentation text of one item.
type docView struct {
	Summary        string
	RemarksHeading string
	Remarks        string
	Deprecated     string
	Since          string
	// Inline is a single-line summary safe for table cells.
	Inline string
}

// RenderEnumFile loads API model from file and renders enum page for ref.
func RenderEnumFile(modelPath, ref string, opt Options) (string, error) {
	registry, err := LoadModelFile(modelPath)
	if err != nil {
		return "", err
	}

	return RenderEnum(registry.Lookup(), ref, opt)
}

// RenderEnum renders deterministic CommonMark page for one enum and its ordered members.
func RenderEnum(lookup Lookup, ref string, opt Options) (string, error) {
	view, err := buildEnumView(lookup, ref, opt)
	if err != nil {
		return "", err
	}

	markdownTemplate, err := resolveTemplate(opt)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := markdownTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteMarkdownTemplate, err)
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(out.String())), nil
}

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// BuiltinTemplate returns one built-in template by name.
func BuiltinTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	path, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
	}

	return string(data), nil
}
