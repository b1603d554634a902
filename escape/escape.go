// Package escape provides string escaping for HTML, JSON, regular
// expression, and HTTP header attribute contexts.
package escape

import (
	"fmt"
	"strings"
)

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"`", "&#x60;",
)

// HTML escapes s for safe interpolation into HTML text and attribute
// contexts.
func HTML(s string) string {
	return htmlReplacer.Replace(s)
}

// JSON escapes the characters that make JSON unsafe to embed in HTML
// script contexts: angle brackets, ampersands, and the U+2028/U+2029 line
// separators.
func JSON(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '<':
			b.WriteString("\\u003c")
		case '>':
			b.WriteString("\\u003e")
		case '&':
			b.WriteString("\\u0026")
		case '\u2028':
			b.WriteString("\\u2028")
		case '\u2029':
			b.WriteString("\\u2029")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Regex escapes s so every character matches literally inside a regular
// expression.
func Regex(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`^$.*+-?=!:|\/()[]{},`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// HeaderAttribute escapes s for use as an HTTP header attribute value,
// backslash-escaping quotes and backslashes. Input containing characters
// that cannot appear in a quoted attribute value is rejected.
func HeaderAttribute(s string) (string, error) {
	for _, r := range s {
		if r == '\\' || r == '"' {
			continue
		}
		if !isAttributeChar(r) {
			return "", fmt.Errorf("escape: header attribute contains invalid character %q", r)
		}
	}
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s), nil
}

func isAttributeChar(r rune) bool {
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
		return true
	}
	return strings.ContainsRune(" _-.~!#$%&'`^|*+?=/:@,()<>[]{};", r)
}
