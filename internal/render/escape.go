package render

import "strings"

// HTML is markup that is safe to interpolate into a document. User-supplied
// text becomes HTML only through EscapeText; static markup authored in this
// package is wrapped explicitly with Trusted. Keeping the two paths distinct
// is what prevents unescaped-interpolation bugs.
type HTML string

// escaper covers the five HTML-reserved characters. Replacement is a single
// pass, so entities produced for one character are never re-escaped.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeText escapes user-supplied text for interpolation into HTML text
// content or attribute values.
func EscapeText(s string) HTML {
	return HTML(escaper.Replace(s))
}

// Trusted marks a static markup fragment as safe without escaping. Never
// pass user-supplied data through this.
func Trusted(s string) HTML {
	return HTML(s)
}
