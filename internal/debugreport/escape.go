package debugreport

import "strings"

// EscapeCode replaces every "<" with "&lt;". Nothing else is touched: ">" and
// "&" pass through, so the text must not be treated as sanitized HTML.
func EscapeCode(code string) string {
	return strings.ReplaceAll(code, "<", "&lt;")
}

// CodeBody wraps escaped code in a preformatted block.
func CodeBody(code string) string {
	return "<pre>" + EscapeCode(code) + "</pre>\n"
}
