// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies the declaration kind of a documented API item.
type Kind int

const (
	// KindUnknown is used for missing or unrecognized kind names.
	KindUnknown Kind = iota
	KindPackage
	KindEntryPoint
	KindNamespace
	KindClass
	KindInterface
	KindEnum
	KindEnumMember
	KindFunction
	KindMethod
	KindMethodSignature
	KindConstructor
	KindProperty
	KindPropertySignature
	KindTypeAlias
	KindVariable
)

// kindNames maps every kind to its model name.
var kindNames = map[Kind]string{
	KindUnknown:           "Unknown",
	KindPackage:           "Package",
	KindEntryPoint:        "EntryPoint",
	KindNamespace:         "Namespace",
	KindClass:             "Class",
	KindInterface:         "Interface",
	KindEnum:              "Enum",
	KindEnumMember:        "EnumMember",
	KindFunction:          "Function",
	KindMethod:            "Method",
	KindMethodSignature:   "MethodSignature",
	KindConstructor:       "Constructor",
	KindProperty:          "Property",
	KindPropertySignature: "PropertySignature",
	KindTypeAlias:         "TypeAlias",
	KindVariable:          "Variable",
}

// ParseKind converts a model kind name into Kind.
// Matching ignores case and surrounding spaces; unknown names yield KindUnknown.
func ParseKind(name string) Kind {
	name = strings.TrimSpace(name)
	for kind, kindName := range kindNames {
		if strings.EqualFold(kindName, name) {
			return kind
		}
	}

	return KindUnknown
}

// String returns the model name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return kindNames[KindUnknown]
}

// IsFunctionLike reports whether items of this kind are rendered with a call signature.
func (k Kind) IsFunctionLike() bool {
	switch k {
	case KindFunction, KindMethod, KindMethodSignature:
		return true
	case KindUnknown, KindPackage, KindEntryPoint, KindNamespace, KindClass, KindInterface,
		KindEnum, KindEnumMember, KindConstructor, KindProperty, KindPropertySignature,
		KindTypeAlias, KindVariable:
		return false
	default:
		return false
	}
}

// IsContainer reports whether items of this kind usually own member references.
func (k Kind) IsContainer() bool {
	switch k {
	case KindPackage, KindEntryPoint, KindNamespace, KindClass, KindInterface, KindEnum:
		return true
	case KindUnknown, KindEnumMember, KindFunction, KindMethod, KindMethodSignature,
		KindConstructor, KindProperty, KindPropertySignature, KindTypeAlias, KindVariable:
		return false
	default:
		return false
	}
}

// MarshalJSON encodes kind as its model name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes kind from its model name.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	*k = ParseKind(name)
	return nil
}

// MarshalYAML encodes kind as its model name.
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// UnmarshalYAML decodes kind from its model name.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}

	*k = ParseKind(name)
	return nil
}
