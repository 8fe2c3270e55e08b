// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"path/filepath"
	"strconv"
	"testing"
)

// BenchmarkOrderItems measures ordering of a large member list with partial custom order.
func BenchmarkOrderItems(b *testing.B) {
	items := make([]Item, 0, 1000)
	for index := range 1000 {
		items = append(items, Item{
			CanonicalReference: "ref-" + strconv.Itoa(index),
			DisplayName:        "Member" + strconv.Itoa((index*7919)%1000),
		})
	}

	customOrder := []string{"Member999", "Member500", "Member1"}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = OrderItems(items, customOrder)
	}
}

// BenchmarkRenderListTemplate measures full in-memory render flow for list template.
func BenchmarkRenderListTemplate(b *testing.B) {
	benchmarkRenderTemplate(b, "list")
}

// BenchmarkRenderTableTemplate measures full in-memory render flow for table template.
func BenchmarkRenderTableTemplate(b *testing.B) {
	benchmarkRenderTemplate(b, "table")
}

// BenchmarkRenderEnumFile measures read + render flow from file path.
func BenchmarkRenderEnumFile(b *testing.B) {
	modelPath := filepath.Join("testdata", "model.fixture.json")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := RenderEnumFile(modelPath, colorRef, Options{TemplateName: "list"}); err != nil {
			b.Fatalf("RenderEnumFile: %v", err)
		}
	}
}

// benchmarkRenderTemplate runs common in-memory benchmark for selected template.
func benchmarkRenderTemplate(b *testing.B, templateName string) {
	lookup := fixtureLookup(b)
	options := Options{
		TemplateName: templateName,
		CustomOrder:  []string{"Red"},
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := RenderEnum(lookup, colorRef, options); err != nil {
			b.Fatalf("RenderEnum: %v", err)
		}
	}
}
