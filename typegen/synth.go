// Package typegen generates TypeScript declarations for i18next translation keys.
//
// # Architecture
//
// The package uses a two-layer design:
//  1. locale loads every <namespace>.json into an ordered key tree
//  2. typegen prints those trees as TypeScript (GenerateTypeForObject) and
//     assembles the declaration file around them (Emit)
//
// Generate and Check wrap Emit with file system access: Generate writes the
// declaration file, Check compares it with what would be written.
//
// # Design Decisions
//
//   - Whole-file assembly happens before any write, so a malformed locale file
//     never leaves a partial declaration behind
//   - Locale files are processed in sorted order by default; output is
//     byte-identical across runs and filesystems, which enables `check` in CI
//   - Every leaf is typed as string, including numbers, booleans, null and
//     arrays; only plain objects nest
package typegen

import (
	"strings"

	"github.com/teranos/i18ntypes/locale"
	"github.com/teranos/i18ntypes/typegen/typescript"
)

// IndentStep is the indentation added per nesting level
const IndentStep = 2

// GenerateTypeForObject renders an object node as a TypeScript object type.
//
// Fields are written at indent spaces and the closing brace at indent-2, so
// the block lines up when embedded at that depth. Nested objects recurse with
// IndentStep more; every other value becomes `string`. A leaf or empty object
// yields an empty-bodied block.
func GenerateTypeForObject(n *locale.Node, indent int) string {
	var sb strings.Builder
	writeObjectType(&sb, n, indent)
	return sb.String()
}

func writeObjectType(sb *strings.Builder, n *locale.Node, indent int) {
	spaces := strings.Repeat(" ", indent)

	sb.WriteString("{\n")
	if n.IsObject() {
		for _, f := range n.Fields {
			sb.WriteString(spaces)
			sb.WriteString(typescript.QuoteString(f.Key))
			sb.WriteString(": ")

			if f.Value.IsObject() {
				writeObjectType(sb, f.Value, indent+IndentStep)
				sb.WriteString(",\n")
			} else {
				sb.WriteString("string;\n")
			}
		}
	}
	sb.WriteString(strings.Repeat(" ", max(indent-IndentStep, 0)))
	sb.WriteString("}")
}
