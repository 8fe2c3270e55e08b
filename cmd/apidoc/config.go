// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/apidoc"
)

// errUnknownConfigFormat is returned for config files with unsupported extension.
var errUnknownConfigFormat = errors.New("unknown config format")

// fileConfig is the optional rendering configuration file.
type fileConfig struct {
	// CustomOrders maps canonical reference to member display names rendered first.
	CustomOrders map[string][]string `yaml:"custom_orders" toml:"custom_orders"`

	SourceBaseURL string `yaml:"source_base_url" toml:"source_base_url"`
	Template      string `yaml:"template" toml:"template"`
	ListMarker    string `yaml:"list_marker" toml:"list_marker"`
	MembersTitle  string `yaml:"members_title" toml:"members_title"`

	HeadingLevel int `yaml:"heading_level" toml:"heading_level"`
	WrapWidth    int `yaml:"wrap_width" toml:"wrap_width"`

	Since bool `yaml:"since" toml:"since"`
}

// loadFileConfig reads YAML or TOML config selected by file extension.
// Empty path yields zero config.
func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file %q: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse yaml config %q: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("parse toml config %q: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w %q", errUnknownConfigFormat, ext)
	}

	return cfg, nil
}

// customOrder returns flag order when set, otherwise configured order for ref.
func (cfg fileConfig) customOrder(ref string, flagOrder []string) []string {
	if len(flagOrder) > 0 {
		return flagOrder
	}

	return cfg.CustomOrders[strings.TrimSpace(ref)]
}

// renderOptions merges config values with flag overrides into render options.
func (cfg fileConfig) renderOptions(flags markdownRenderFlags, ref string) apidoc.Options {
	opt := apidoc.Options{
		TemplateName:  firstNonEmpty(flags.TemplateName, cfg.Template),
		SourceBaseURL: firstNonEmpty(flags.SourceBaseURL, cfg.SourceBaseURL),
		MembersTitle:  firstNonEmpty(flags.MembersTitle, cfg.MembersTitle),
		ListMarker:    firstNonEmpty(flags.ListMarker, cfg.ListMarker),
		HeadingLevel:  firstPositive(flags.HeadingLevel, cfg.HeadingLevel),
		WrapWidth:     firstPositive(flags.WrapWidth, cfg.WrapWidth),
		Since:         flags.Since || cfg.Since,
		CustomOrder:   cfg.customOrder(ref, flags.Order),
	}

	return opt
}

// firstNonEmpty returns the first value that is not blank.
func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}

	return ""
}

// firstPositive returns the first value above zero.
func firstPositive(values ...int) int {
	for _, value := range values {
		if value > 0 {
			return value
		}
	}

	return 0
}
