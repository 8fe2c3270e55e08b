// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"encoding/json"
	"testing"
)

func TestHeading(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		text  string
		want  string
		attrs HeadingAttrs
		level int
	}{
		{
			name:  "plain",
			level: 3,
			text:  "Title",
			want:  "### Title",
		},
		{
			name:  "linked with anchor",
			level: 2,
			text:  "`Color`",
			attrs: HeadingAttrs{ID: "color", Link: true},
			want:  "<a id=\"color\"></a>\n\n## [`Color`](#color)",
		},
		{
			name:  "anchor without link",
			level: 4,
			text:  "Remarks",
			attrs: HeadingAttrs{ID: "x"},
			want:  "<a id=\"x\"></a>\n\n#### Remarks",
		},
		{
			name:  "link without id is ignored",
			level: 2,
			text:  "Title",
			attrs: HeadingAttrs{Link: true},
			want:  "## Title",
		},
		{
			name:  "since tag and level clamp low",
			level: 0,
			text:  "x",
			attrs: HeadingAttrs{MinVersion: "1.0"},
			want:  "# x _(since 1.0)_",
		},
		{
			name:  "level clamp high",
			level: 9,
			text:  "x",
			want:  "###### x",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Heading(tc.level, tc.text, tc.attrs); got != tc.want {
				t.Fatalf("Heading() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestItemHeading(t *testing.T) {
	t.Parallel()

	color := Item{
		CanonicalReference: "pkg!Color:enum",
		DisplayName:        "Color",
		Kind:               KindEnum,
		Comment:            &Comment{Since: "1.2.0"},
	}
	useColor := Item{
		CanonicalReference: "pkg!useColor:function",
		DisplayName:        "useColor",
		Kind:               KindFunction,
		Parameters: []Parameter{
			{Name: "color", Type: "Color"},
			{Name: "options", Type: "ColorOptions", Optional: true},
		},
	}

	cases := []struct {
		name string
		want string
		item Item
		opt  HeadingOptions
	}{
		{
			name: "linked by default at shallow level",
			item: color,
			opt:  HeadingOptions{Level: 2},
			want: "<a id=\"color\"></a>\n\n## [`Color`](#color)",
		},
		{
			name: "not linked below level four",
			item: color,
			opt:  HeadingOptions{Level: 5},
			want: "##### `Color`",
		},
		{
			name: "explicit link override",
			item: color,
			opt:  HeadingOptions{Level: 2, Link: boolPtr(false)},
			want: "## `Color`",
		},
		{
			name: "since tag",
			item: color,
			opt:  HeadingOptions{Level: 5, Since: true},
			want: "##### `Color` _(since 1.2.0)_",
		},
		{
			name: "prefix and suffix",
			item: color,
			opt:  HeadingOptions{Level: 5, Prefix: "enum ", Suffix: " (legacy)"},
			want: "##### enum `Color` (legacy)",
		},
		{
			name: "function signature",
			item: useColor,
			opt:  HeadingOptions{Level: 3, Signature: true},
			want: "<a id=\"usecolor\"></a>\n\n### [`useColor(color, options?)`](#usecolor)",
		},
		{
			name: "signature ignored for non function kinds",
			item: color,
			opt:  HeadingOptions{Level: 5, Signature: true},
			want: "##### `Color`",
		},
		{
			name: "missing display name falls back to reference",
			item: Item{CanonicalReference: "pkg!X"},
			opt:  HeadingOptions{Level: 5},
			want: "##### `pkg!X`",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := ItemHeading(tc.item, tc.opt); got != tc.want {
				t.Fatalf("ItemHeading() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSubHeading(t *testing.T) {
	t.Parallel()

	color := Item{CanonicalReference: "pkg!Color:enum", DisplayName: "Color"}

	got := SubHeading(color, SubHeadingOptions{Level: 3, Title: "Remarks"})
	want := "<a id=\"color-remarks\"></a>\n\n### [Remarks](#color-remarks)"
	if got != want {
		t.Fatalf("SubHeading() = %q, want %q", got, want)
	}

	got = SubHeading(color, SubHeadingOptions{Level: 5, Title: "Remarks", ID: "custom"})
	want = "<a id=\"custom\"></a>\n\n##### Remarks"
	if got != want {
		t.Fatalf("SubHeading(custom id) = %q, want %q", got, want)
	}

	got = SubHeading(color, SubHeadingOptions{Level: 5, Title: "Remarks"})
	want = "##### Remarks"
	if got != want {
		t.Fatalf("SubHeading(deep) = %q, want %q", got, want)
	}
}

func TestSectionHeading(t *testing.T) {
	t.Parallel()

	if got := SectionHeading(" Enumeration   Members "); got != "**ENUMERATION MEMBERS**" {
		t.Fatalf("SectionHeading() = %q", got)
	}

	if got := SectionHeading("  "); got != "" {
		t.Fatalf("SectionHeading(blank) = %q, want empty", got)
	}
}

func TestSourceLink(t *testing.T) {
	t.Parallel()

	item := Item{DisplayName: "Color", File: "src/color.ts"}

	if got := SourceLink(Item{DisplayName: "Color"}, "https://example.com"); got != "" {
		t.Fatalf("SourceLink(no file) = %q, want empty", got)
	}

	if got := SourceLink(item, ""); got != "(`src/color.ts`)" {
		t.Fatalf("SourceLink(no base) = %q", got)
	}

	got := SourceLink(item, "https://github.com/acme/lib/blob/main/")
	want := "([src/color.ts](https://github.com/acme/lib/blob/main/src/color.ts))"
	if got != want {
		t.Fatalf("SourceLink() = %q, want %q", got, want)
	}
}

func TestFunctionSignature(t *testing.T) {
	t.Parallel()

	item := Item{
		DisplayName: "useColor",
		Kind:        KindFunction,
		Parameters: []Parameter{
			{Name: "color", Type: "Color"},
			{Name: "options", Type: "ColorOptions", Optional: true},
			{Name: "rest"},
		},
		ReturnType: "string",
	}

	if got, want := FunctionSignature(item, false), "useColor(color, options?, rest)"; got != want {
		t.Fatalf("FunctionSignature(untyped) = %q, want %q", got, want)
	}

	if got, want := FunctionSignature(item, true), "useColor(color: Color, options?: ColorOptions, rest): string"; got != want {
		t.Fatalf("FunctionSignature(typed) = %q, want %q", got, want)
	}

	if got, want := FunctionSignature(Item{DisplayName: "noop"}, true), "noop()"; got != want {
		t.Fatalf("FunctionSignature(empty) = %q, want %q", got, want)
	}
}

func TestKindParseAndString(t *testing.T) {
	t.Parallel()

	cases := map[string]Kind{
		"Enum":            KindEnum,
		" enum ":          KindEnum,
		"methodSignature": KindMethodSignature,
		"EnumMember":      KindEnumMember,
		"Bogus":           KindUnknown,
		"":                KindUnknown,
	}

	for input, want := range cases {
		if got := ParseKind(input); got != want {
			t.Fatalf("ParseKind(%q) = %v, want %v", input, got, want)
		}
	}

	if got := Kind(99).String(); got != "Unknown" {
		t.Fatalf("Kind(99).String() = %q, want Unknown", got)
	}
}

func TestKindIsFunctionLike(t *testing.T) {
	t.Parallel()

	for kind := range kindNames {
		want := kind == KindFunction || kind == KindMethod || kind == KindMethodSignature
		if got := kind.IsFunctionLike(); got != want {
			t.Fatalf("%s.IsFunctionLike() = %v, want %v", kind, got, want)
		}
	}
}

func TestKindJSONDecodeUnknown(t *testing.T) {
	t.Parallel()

	var item Item
	if err := json.Unmarshal([]byte(`{"displayName": "x", "kind": "Decorator"}`), &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if item.Kind != KindUnknown {
		t.Fatalf("kind = %v, want Unknown", item.Kind)
	}

	data, err := json.Marshal(Item{DisplayName: "x", Kind: KindMethod})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if string(data) != `{"displayName":"x","kind":"Method"}` {
		t.Fatalf("marshal = %s", data)
	}
}

func boolPtr(value bool) *bool {
	return &value
}

func TestKindIsContainer(t *testing.T) {
	t.Parallel()

	containers := map[Kind]bool{
		KindPackage:    true,
		KindEntryPoint: true,
		KindNamespace:  true,
		KindClass:      true,
		KindInterface:  true,
		KindEnum:       true,
	}

	for kind := range kindNames {
		if got := kind.IsContainer(); got != containers[kind] {
			t.Fatalf("%s.IsContainer() = %v, want %v", kind, got, containers[kind])
		}
	}
}

func TestAnchorID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		want  string
		parts []string
	}{
		{parts: []string{"Color"}, want: "color"},
		{parts: []string{"Color", "Remarks"}, want: "color-remarks"},
		{parts: []string{" Enumeration   Members "}, want: "enumeration-members"},
		{parts: []string{"snake_case", "--x--"}, want: "snake-case-x"},
		{parts: []string{"pkg!Color.Red:member"}, want: "pkgcolorredmember"},
		{parts: []string{"Größe", "2"}, want: "größe-2"},
		{parts: []string{"!!!"}, want: ""},
	}

	for _, tc := range cases {
		if got := anchorID(tc.parts...); got != tc.want {
			t.Fatalf("anchorID(%q) = %q, want %q", tc.parts, got, tc.want)
		}
	}
}

func TestInlineCodeFencesBackticks(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Color":  "`Color`",
		"a`b":    "``a`b``",
		"a``b`c": "```a``b`c```",
		"`tick":  "`` `tick ``",
		"tick`":  "`` tick` ``",
		" pad ":  "`  pad  `",
		"  ":     "`  `",
	}

	for input, want := range cases {
		if got := inlineCode(input); got != want {
			t.Fatalf("inlineCode(%q) = %q, want %q", input, got, want)
		}
	}

	got := ItemHeading(Item{DisplayName: "a`b"}, HeadingOptions{Level: 5})
	if want := "##### ``a`b``"; got != want {
		t.Fatalf("ItemHeading(backtick name) = %q, want %q", got, want)
	}
}
