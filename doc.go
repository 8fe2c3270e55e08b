// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

/*
Package apidoc renders CommonMark API reference pages from a pre-extracted API
model.

The model is a flat list of items addressed by canonical reference. Rendering
never parses source code: it only arranges headings, doc blocks and member
lists. Every function takes the item lookup explicitly, so rendering and
ordering stay pure and safe for concurrent use.

Load a model and render an enum page:

	registry, err := apidoc.LoadModelFile("api.json")
	if err != nil {
		return err
	}

	md, err := apidoc.RenderEnum(registry.Lookup(), "pkg!Color:enum", apidoc.Options{
		HeadingLevel: 2,
		CustomOrder:  []string{"Red", "Green"},
		TemplateName: "table",
	})
	if err != nil {
		return err
	}

	fmt.Println(md)

Order arbitrary items. Names listed in the custom order come first in that
order, the rest follow sorted by display name:

	ordered := apidoc.OrderItems(items, []string{"Mango", "Zebra"})

Export the computed order:

	data, err := apidoc.EncodeOrder(ordered, apidoc.OutputFormatYAML)
	if err != nil {
		return err
	}

	os.Stdout.Write(data)

Print a member tree:

	tree, err := apidoc.RenderTree(registry.Lookup(), "pkg!Color:enum", nil, nil)
	if err != nil {
		return err
	}

	fmt.Print(tree)
*/
package apidoc
