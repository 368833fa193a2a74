package util

import (
	"strings"
	"unicode"
)

// Capitalize upper-cases the first letter and keeps the rest as-is
// ("common" -> "Common", "userProfile" -> "UserProfile").
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ToPascalCase converts snake_case, kebab-case or dotted names to PascalCase
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return !isIdentifierRune(r)
	})

	var result strings.Builder
	for _, part := range parts {
		result.WriteString(Capitalize(part))
	}

	return result.String()
}

// TypeIdentifier turns a namespace into a TypeScript identifier stem.
//
// Names that are already valid identifier text are only capitalized, so
// "common" becomes "Common". Anything else is PascalCased across the invalid
// characters ("admin-panel" -> "AdminPanel"), and a leading digit gets an
// underscore ("404" -> "_404").
func TypeIdentifier(namespace string) string {
	var ident string
	if strings.IndexFunc(namespace, func(r rune) bool { return !isIdentifierRune(r) }) == -1 {
		ident = Capitalize(namespace)
	} else {
		ident = ToPascalCase(namespace)
	}

	if ident == "" {
		return "_"
	}
	if r := []rune(ident)[0]; unicode.IsDigit(r) {
		ident = "_" + ident
	}
	return ident
}

// isIdentifierRune reports whether r may appear in a TypeScript identifier
func isIdentifierRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
