// Copyright 2018 Andrew Fort

// Package transform translates canonically stored schema expressions
// into the prefix namespace of a particular module.
//
// Compiled models store XPath conditions, leafref paths and
// augment/deviation/refine targets in canonical form, where every
// qualified identifier uses the defining module's name as its prefix
// (for example "ietf-interfaces:interfaces"). Serializing a module
// requires those names rewritten to the prefixes the module actually
// declares via its own prefix statement and its imports
// ("if:interfaces"). An expression referring to a module the current
// module neither is nor imports cannot be expressed and yields an
// *Error.
package transform

import (
	"fmt"
	"strings"

	"github.com/andaru/yang/schema"
	"github.com/pkg/errors"
)

// Error describes a failure to translate a canonical expression into
// a module's local prefix form.
type Error struct {
	// Module is the name of the module the expression was being
	// translated for.
	Module string
	// Expr is the expression being translated.
	Expr string
	// Name is the module name within Expr that could not be resolved
	// to a prefix.
	Name string
}

func (e *Error) Error() string {
	return fmt.Sprintf("no import of module %q in module %q translating %q",
		e.Name, e.Module, e.Expr)
}

// SchemaExpr translates the canonical expression expr (a when/must
// XPath condition or a leafref path) into the prefix namespace of
// module m.
func SchemaExpr(m *schema.Module, expr string) (string, error) {
	return rewrite(m, expr)
}

// XMLPath translates the canonical schema path expr (an augment,
// deviation or refine target) into the prefix form valid within m's
// YIN document, where m's own prefix and its import prefixes are
// declared.
func XMLPath(m *schema.Module, expr string) (string, error) {
	return rewrite(m, expr)
}

// rewrite scans expr for qualified identifiers ("name:ident") outside
// string literals and replaces each module name with the prefix m
// declares for it. XPath axis specifiers ("child::...") are left
// untouched.
func rewrite(m *schema.Module, expr string) (string, error) {
	var b strings.Builder
	b.Grow(len(expr))

	for i := 0; i < len(expr); {
		c := expr[i]

		switch {
		case c == '\'' || c == '"':
			// copy the string literal wholesale
			end := strings.IndexByte(expr[i+1:], c)
			if end < 0 {
				b.WriteString(expr[i:])
				return b.String(), nil
			}
			b.WriteString(expr[i : i+end+2])
			i += end + 2

		case identStart(c):
			j := i + 1
			for j < len(expr) && identPart(expr[j]) {
				j++
			}
			name := expr[i:j]
			if j >= len(expr) || expr[j] != ':' || (j+1 < len(expr) && expr[j+1] == ':') {
				// bare identifier or an axis specifier
				b.WriteString(name)
				i = j
				continue
			}
			prefix := modulePrefix(m, name)
			if prefix == "" {
				return "", errors.WithStack(&Error{Module: m.Name, Expr: expr, Name: name})
			}
			b.WriteString(prefix)
			b.WriteByte(':')
			i = j + 1

		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), nil
}

func modulePrefix(m *schema.Module, name string) string {
	if m.Name == name {
		return m.Prefix
	}
	return m.ImportPrefix(name)
}

func identStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func identPart(c byte) bool {
	return identStart(c) || c == '-' || c == '.' || (c >= '0' && c <= '9')
}
