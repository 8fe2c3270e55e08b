// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"strings"
	"unicode/utf8"
)

// fenceMarker opens and closes fenced code blocks.
const fenceMarker = "```"

// descriptionFormatter accumulates normalized description lines.
type descriptionFormatter struct {
	listMarker string
	out        []string
	paragraph  []string
	wrapWidth  int
	inFence    bool
}

// sanitizeText trims and squashes repeated whitespace in plain text fields.
func sanitizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// normalizeWrapWidth validates wrap width and falls back to default.
func normalizeWrapWidth(value int) int {
	if value <= 0 {
		return defaultWrapWidth
	}

	return value
}

// normalizeListMarker validates list marker and falls back to default.
func normalizeListMarker(value string) string {
	switch marker := strings.TrimSpace(value); marker {
	case "*", "-":
		return marker
	default:
		return defaultListMarker
	}
}

// formatDescriptionMarkdown wraps plain paragraphs and keeps markdown structures intact.
func formatDescriptionMarkdown(text string, wrapWidth int, listMarker string) string {
	text = strings.TrimSpace(normalizeLineEndings(text))
	if text == "" {
		return ""
	}

	formatter := descriptionFormatter{
		listMarker: normalizeListMarker(listMarker),
		wrapWidth:  wrapWidth,
	}

	for _, line := range strings.Split(text, "\n") {
		formatter.feed(strings.TrimRight(line, " \t"))
	}

	formatter.flush()
	return strings.Join(formatter.out, "\n")
}

// feed consumes one source line.
func (f *descriptionFormatter) feed(line string) {
	trimmed := strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(trimmed, fenceMarker):
		f.flush()
		f.out = append(f.out, line)
		f.inFence = !f.inFence
	case f.inFence:
		f.out = append(f.out, line)
	case trimmed == "":
		f.flush()
		f.blank()
	case isStructuredLine(line):
		f.flush()
		normalized := normalizeStructuredLine(line, f.listMarker)
		if f.needsBlankBeforeList(normalized) {
			f.blank()
		}

		f.out = append(f.out, normalized)
	default:
		f.paragraph = append(f.paragraph, trimmed)
	}
}

// flush wraps and emits pending paragraph words.
func (f *descriptionFormatter) flush() {
	if len(f.paragraph) == 0 {
		return
	}

	f.out = append(f.out, wrapParagraph(strings.Join(f.paragraph, " "), f.wrapWidth)...)
	f.paragraph = f.paragraph[:0]
}

// blank emits one separator line unless output already ends with one.
func (f *descriptionFormatter) blank() {
	if len(f.out) == 0 || f.out[len(f.out)-1] == "" {
		return
	}

	f.out = append(f.out, "")
}

// needsBlankBeforeList reports whether a list line directly follows paragraph text.
func (f *descriptionFormatter) needsBlankBeforeList(line string) bool {
	if !isListLine(line) || len(f.out) == 0 {
		return false
	}

	previous := f.out[len(f.out)-1]
	if strings.TrimSpace(previous) == "" || isListLine(previous) {
		return false
	}

	return !isStructuredLine(previous)
}

// isListLine reports whether line is unordered or ordered markdown list item.
func isListLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if _, ok := unorderedListContent(trimmed); ok {
		return true
	}

	return orderedListMarkerEnd(trimmed) > 0
}

// isStructuredLine reports whether line must bypass paragraph wrapping.
func isStructuredLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	if isIndentedCodeLine(line) || isListLine(line) {
		return true
	}

	for _, prefix := range []string{"#", ">", "|", fenceMarker, "---", "***", "___"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	return false
}

// isIndentedCodeLine reports whether line starts with markdown code indentation.
func isIndentedCodeLine(line string) bool {
	return strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
}

// normalizeStructuredLine rewrites list markers and nesting, other structures pass through.
func normalizeStructuredLine(line, listMarker string) string {
	if isIndentedCodeLine(line) {
		return line
	}

	trimmed := strings.TrimSpace(line)
	indent := strings.Repeat("  ", listIndentLevel(leadingIndentColumns(line)))

	if content, ok := unorderedListContent(trimmed); ok {
		return strings.TrimRight(indent+listMarker+" "+content, " ")
	}

	if end := orderedListMarkerEnd(trimmed); end > 0 {
		content := strings.TrimSpace(trimmed[end:])
		return strings.TrimRight(indent+trimmed[:end]+" "+content, " ")
	}

	return line
}

// unorderedListContent returns item text when line starts with "-", "*" or "+" marker.
func unorderedListContent(trimmed string) (string, bool) {
	if len(trimmed) < 2 || !strings.ContainsRune("-*+", rune(trimmed[0])) {
		return "", false
	}

	if trimmed[1] != ' ' && trimmed[1] != '\t' {
		return "", false
	}

	return strings.TrimSpace(trimmed[1:]), true
}

// orderedListMarkerEnd returns length of "N." or "N)" marker, or zero.
func orderedListMarkerEnd(trimmed string) int {
	index := 0
	for index < len(trimmed) && trimmed[index] >= '0' && trimmed[index] <= '9' {
		index++
	}

	if index == 0 || index+1 >= len(trimmed) {
		return 0
	}

	if trimmed[index] != '.' && trimmed[index] != ')' {
		return 0
	}

	if trimmed[index+1] != ' ' && trimmed[index+1] != '\t' {
		return 0
	}

	return index + 1
}

// leadingIndentColumns returns visual indentation width for leading spaces and tabs.
func leadingIndentColumns(line string) int {
	columns := 0
	for _, r := range line {
		switch r {
		case ' ':
			columns++
		case '\t':
			columns += 4
		default:
			return columns
		}
	}

	return columns
}

// listIndentLevel maps raw indentation width to list nesting level.
func listIndentLevel(columns int) int {
	if columns <= 1 {
		return 0
	}

	return columns / 2
}

// wrapParagraph wraps one plain paragraph to max rune width.
func wrapParagraph(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	current := words[0]
	currentLen := utf8.RuneCountInString(current)
	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if currentLen+1+wordLen > width {
			lines = append(lines, current)
			current, currentLen = word, wordLen
			continue
		}

		current += " " + word
		currentLen += 1 + wordLen
	}

	return append(lines, current)
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	return strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(text)
}

// normalizeMarkdownOutput collapses repeated blank lines outside fenced blocks.
func normalizeMarkdownOutput(text string) string {
	lines := strings.Split(normalizeLineEndings(text), "\n")
	out := make([]string, 0, len(lines))

	inFence := false
	for _, raw := range lines {
		line := strings.TrimRight(raw, " \t")
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, fenceMarker) {
			inFence = !inFence
		} else if !inFence && trimmed == "" {
			if len(out) == 0 || out[len(out)-1] == "" {
				continue
			}
		}

		out = append(out, line)
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

// escapeInline escapes backticks in inline code markdown segments.
func escapeInline(value string) string {
	return strings.ReplaceAll(value, "`", "\\`")
}

// escapeTableCell escapes pipe characters inside markdown table cells.
func escapeTableCell(value string) string {
	return strings.ReplaceAll(value, "|", `\|`)
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	return strings.TrimRight(value, "\n") + "\n"
}
