package typegen

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/teranos/i18ntypes/errors"
	"github.com/teranos/i18ntypes/locale"
	"github.com/teranos/i18ntypes/logger"
	"github.com/teranos/i18ntypes/typegen/typescript"
	"github.com/teranos/i18ntypes/typegen/util"
)

// Fixed separators declared in CustomTypeOptions
const (
	KeySeparator       = "."
	NamespaceSeparator = ":"
)

// Indentation of the two embeddings of each namespace type
const (
	keysIndent     = 2 // inside NestedKeyOf<...>
	resourceIndent = 8 // inside CustomTypeOptions.resources
)

// Header marks the file as generated
const Header = "// This file has been generated automatically, DO NOT EDIT MANUALLY\n"

// nestedKeyOf is the generic dot-path-union helper
const nestedKeyOf = `type NestedKeyOf<T> = {
  [K in keyof T & (string | number)]: T[K] extends object
    ? ` + "`${K}" + KeySeparator + "${NestedKeyOf<T[K]>}`" + `
    : K;
}[keyof T & (string | number)];
`

// DefaultModules are augmented when Options.Modules is empty
var DefaultModules = []string{"i18next", "react-i18next"}

// Options controls declaration assembly
type Options struct {
	// DefaultNamespace is declared as defaultNS. Empty means the first namespace.
	DefaultNamespace string

	// Modules get a CustomTypeOptions augmentation each
	Modules []string

	// Order decides document order when loading a directory
	Order locale.Order
}

// Result describes one assembled declaration file
type Result struct {
	Content          string
	Namespaces       []string
	TypeNames        []string
	DefaultNamespace string

	// Skipped lists namespaces dropped because their type name was taken
	Skipped []string

	// Set by Generate
	LocalesDir string
	OutputFile string
	Written    bool
}

type namespaceEntry struct {
	doc      *locale.Document
	typeName string
}

// KeysTypeName returns the <Name>Keys identifier for a namespace
func KeysTypeName(namespace string) string {
	return util.TypeIdentifier(namespace) + "Keys"
}

// Emit assembles the declaration file for docs, in the order given.
func Emit(docs []*locale.Document, opts Options) (*Result, error) {
	if len(docs) == 0 {
		return nil, errors.WithStack(errors.ErrNoLocales)
	}

	entries := collectEntries(docs)

	defaultNS, err := resolveDefaultNamespace(entries, opts.DefaultNamespace)
	if err != nil {
		return nil, err
	}

	modules := opts.Modules
	if len(modules) == 0 {
		modules = DefaultModules
	}

	typeNames := lo.Map(entries, func(e namespaceEntry, _ int) string { return e.typeName })
	namespaces := lo.Map(entries, func(e namespaceEntry, _ int) string { return e.doc.Namespace })

	var sb strings.Builder

	sb.WriteString(Header)
	sb.WriteString(fmt.Sprintf("import %s;\n\n", typescript.QuoteString(modules[0])))
	sb.WriteString(nestedKeyOf)
	sb.WriteString("\n")

	for _, e := range entries {
		writeKeysType(&sb, e)
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("type TranslationKeys = %s;\n\n", typescript.Union(typeNames)))

	writeNamespaceLookup(&sb, entries)

	resources := resourceLines(entries)
	for _, module := range modules {
		writeModuleAugmentation(&sb, module, defaultNS, resources)
	}

	exports := append([]string{"TranslationKeys", "NamespaceKeys"}, typeNames...)
	sb.WriteString(fmt.Sprintf("export type { %s };\n", strings.Join(exports, ", ")))

	return &Result{
		Content:          sb.String(),
		Namespaces:       namespaces,
		TypeNames:        typeNames,
		DefaultNamespace: defaultNS,
		Skipped:          skippedNamespaces(docs, entries),
	}, nil
}

// declaredTypes are the identifiers Emit declares besides the namespace types
var declaredTypes = []string{"NestedKeyOf", "TranslationKeys", "NamespaceKeys"}

// collectEntries pairs documents with type names. A namespace whose type name
// would shadow a declared helper gets <Name>NsKeys instead. When two
// namespaces map to the same type name the first one wins.
func collectEntries(docs []*locale.Document) []namespaceEntry {
	entries := make([]namespaceEntry, 0, len(docs))
	owner := make(map[string]string, len(docs)+len(declaredTypes))
	for _, name := range declaredTypes {
		owner[name] = ""
	}

	for _, doc := range docs {
		typeName := KeysTypeName(doc.Namespace)
		if lo.Contains(declaredTypes, typeName) {
			typeName = util.TypeIdentifier(doc.Namespace) + "NsKeys"
		}

		if first, taken := owner[typeName]; taken {
			logger.Warnw("Namespace skipped, type name already used",
				logger.FieldNamespace, doc.Namespace,
				logger.FieldFile, doc.File,
				"type", typeName,
				"used_by", first)
			continue
		}
		owner[typeName] = doc.Namespace
		entries = append(entries, namespaceEntry{doc: doc, typeName: typeName})
	}

	return entries
}

func skippedNamespaces(docs []*locale.Document, entries []namespaceEntry) []string {
	if len(docs) == len(entries) {
		return nil
	}
	kept := lo.SliceToMap(entries, func(e namespaceEntry) (*locale.Document, bool) { return e.doc, true })
	return lo.FilterMap(docs, func(d *locale.Document, _ int) (string, bool) {
		return d.Namespace, !kept[d]
	})
}

func resolveDefaultNamespace(entries []namespaceEntry, requested string) (string, error) {
	if requested == "" {
		return entries[0].doc.Namespace, nil
	}

	found := lo.ContainsBy(entries, func(e namespaceEntry) bool { return e.doc.Namespace == requested })
	if !found {
		available := lo.Map(entries, func(e namespaceEntry, _ int) string { return e.doc.Namespace })
		return "", errors.WithHintf(
			errors.NewInvalidRequestError("default namespace %q has no locale file", requested),
			"available namespaces: %s", strings.Join(available, ", "),
		)
	}
	return requested, nil
}

// writeKeysType writes: type CommonKeys = `common:${NestedKeyOf<{...}>}`;
func writeKeysType(sb *strings.Builder, e namespaceEntry) {
	template := typescript.EscapeTemplate(e.doc.Namespace+NamespaceSeparator) +
		"${NestedKeyOf<" + GenerateTypeForObject(e.doc.Root, keysIndent) + ">}"

	sb.WriteString(fmt.Sprintf("type %s = %s;\n", e.typeName, typescript.TemplateLiteral(template)))
}

// writeNamespaceLookup writes the NamespaceKeys conditional chain,
// ending in never for unknown namespaces
func writeNamespaceLookup(sb *strings.Builder, entries []namespaceEntry) {
	branches := lo.Map(entries, func(e namespaceEntry, _ int) string {
		return fmt.Sprintf("  T extends %s ? %s", typescript.QuoteString(e.doc.Namespace), e.typeName)
	})

	sb.WriteString("type NamespaceKeys<T extends string> =\n")
	sb.WriteString(strings.Join(branches, " :\n"))
	sb.WriteString(" : never;\n\n")
}

func resourceLines(entries []namespaceEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("      %s: %s,\n",
			typescript.QuoteString(e.doc.Namespace),
			GenerateTypeForObject(e.doc.Root, resourceIndent)))
	}
	return sb.String()
}

func writeModuleAugmentation(sb *strings.Builder, module, defaultNS, resources string) {
	sb.WriteString(fmt.Sprintf("declare module %s {\n", typescript.QuoteString(module)))
	sb.WriteString("  interface CustomTypeOptions {\n")
	sb.WriteString(fmt.Sprintf("    defaultNS: %s;\n", typescript.QuoteString(defaultNS)))
	sb.WriteString("    resources: {\n")
	sb.WriteString(resources)
	sb.WriteString("    };\n")
	sb.WriteString(fmt.Sprintf("    keySeparator: %s;\n", typescript.QuoteString(KeySeparator)))
	sb.WriteString(fmt.Sprintf("    nsSeparator: %s;\n", typescript.QuoteString(NamespaceSeparator)))
	sb.WriteString("  }\n")
	sb.WriteString("}\n\n")
}
