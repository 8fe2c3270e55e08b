// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFileConfigEmptyPath(t *testing.T) {
	t.Parallel()

	cfg, err := loadFileConfig("  ")
	require.NoError(t, err)
	require.Equal(t, fileConfig{}, cfg)
}

func TestLoadFileConfigYAMLAndTOMLAgree(t *testing.T) {
	t.Parallel()

	yamlPath := writeConfigFixture(t, "apidoc.yml", `custom_orders:
  "pkg!Color:enum": [Red]
source_base_url: https://example.com/src
template: table
list_marker: "-"
members_title: Values
heading_level: 3
wrap_width: 60
since: true
`)
	tomlPath := writeConfigFixture(t, "apidoc.toml", `source_base_url = "https://example.com/src"
template = "table"
list_marker = "-"
members_title = "Values"
heading_level = 3
wrap_width = 60
since = true

[custom_orders]
"pkg!Color:enum" = ["Red"]
`)

	fromYAML, err := loadFileConfig(yamlPath)
	require.NoError(t, err)

	fromTOML, err := loadFileConfig(tomlPath)
	require.NoError(t, err)

	require.Equal(t, fromYAML, fromTOML)
	require.Equal(t, []string{"Red"}, fromYAML.CustomOrders[colorRef])
	require.Equal(t, 3, fromYAML.HeadingLevel)
	require.True(t, fromYAML.Since)
}

func TestLoadFileConfigErrors(t *testing.T) {
	t.Parallel()

	_, err := loadFileConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read config file")

	_, err = loadFileConfig(writeConfigFixture(t, "bad.yaml", "custom_orders: [\n"))
	require.ErrorContains(t, err, "parse yaml config")

	_, err = loadFileConfig(writeConfigFixture(t, "bad.toml", "template = \n"))
	require.ErrorContains(t, err, "parse toml config")

	_, err = loadFileConfig(writeConfigFixture(t, "apidoc.json", "{}"))
	require.ErrorIs(t, err, errUnknownConfigFormat)
}

func TestRenderOptionsFlagsOverrideConfig(t *testing.T) {
	t.Parallel()

	cfg := fileConfig{
		CustomOrders:  map[string][]string{colorRef: {"Green"}},
		SourceBaseURL: "https://example.com/cfg",
		Template:      "table",
		MembersTitle:  "Values",
		HeadingLevel:  3,
		WrapWidth:     60,
	}

	opt := cfg.renderOptions(markdownRenderFlags{}, " "+colorRef+" ")
	require.Equal(t, "table", opt.TemplateName)
	require.Equal(t, "https://example.com/cfg", opt.SourceBaseURL)
	require.Equal(t, "Values", opt.MembersTitle)
	require.Equal(t, 3, opt.HeadingLevel)
	require.Equal(t, 60, opt.WrapWidth)
	require.Equal(t, []string{"Green"}, opt.CustomOrder)
	require.False(t, opt.Since)

	opt = cfg.renderOptions(markdownRenderFlags{
		Order:        []string{"Red"},
		TemplateName: "list",
		HeadingLevel: 1,
		Since:        true,
	}, colorRef)
	require.Equal(t, "list", opt.TemplateName)
	require.Equal(t, 1, opt.HeadingLevel)
	require.Equal(t, []string{"Red"}, opt.CustomOrder)
	require.True(t, opt.Since)

	require.Nil(t, cfg.renderOptions(markdownRenderFlags{}, "pkg!Other").CustomOrder)
}
