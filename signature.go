// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import "strings"

// FunctionSignature renders call signature of an item.
// With parameterTypes parameter and return types are included.
func FunctionSignature(item Item, parameterTypes bool) string {
	params := make([]string, 0, len(item.Parameters))
	for _, param := range item.Parameters {
		name := strings.TrimSpace(param.Name)
		if param.Optional {
			name += "?"
		}

		if typeName := strings.TrimSpace(param.Type); parameterTypes && typeName != "" {
			name += ": " + typeName
		}

		params = append(params, name)
	}

	signature := itemLabel(item) + "(" + strings.Join(params, ", ") + ")"
	if returnType := strings.TrimSpace(item.ReturnType); parameterTypes && returnType != "" {
		signature += ": " + returnType
	}

	return signature
}
