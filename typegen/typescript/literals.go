// Package typescript formats TypeScript literal syntax for generated declarations.
package typescript

import "strings"

var singleQuoteEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

var templateEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"${", `\${`,
)

// QuoteString returns s as a single-quoted string literal
func QuoteString(s string) string {
	return "'" + singleQuoteEscaper.Replace(s) + "'"
}

// EscapeTemplate escapes s for use inside a template literal type
func EscapeTemplate(s string) string {
	return templateEscaper.Replace(s)
}

// TemplateLiteral wraps already-escaped template text in backticks
func TemplateLiteral(text string) string {
	return "`" + text + "`"
}

// Union joins type expressions with " | "
func Union(types []string) string {
	return strings.Join(types, " | ")
}
