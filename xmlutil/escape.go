package xmlutil

import "strings"

// YIN documents quote every attribute with double quotes, so a quote
// must be escaped in attribute context but not in character data.
// Newlines and tabs pass through both contexts verbatim.
var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// EscapeText escapes s for use as XML character data.
func EscapeText(s string) string { return textEscaper.Replace(s) }

// EscapeAttr escapes s for use within a double-quoted XML attribute
// value.
func EscapeAttr(s string) string { return attrEscaper.Replace(s) }
