// ABOUTME: Pure rewrite of the Ghostty "theme = ..." directive inside a config document
// ABOUTME: Replaces only the first matching line, never appends, reports whether text changed

package ghostty

import (
	"regexp"
	"strings"

	"github.com/mauromedda/pi-theme-sync/internal/catalog"
	"github.com/mauromedda/pi-theme-sync/internal/resolver"
)

// themeLine matches a theme directive anchored at the start of a line.
var themeLine = regexp.MustCompile(`(?m)^theme\s*=\s*.+$`)

// Result is the outcome of a rewrite.
type Result struct {
	Text    string
	Changed bool
}

// Rewrite replaces the first theme directive in doc with "theme = <value>".
// A document without a theme directive is returned unchanged: its author
// chose not to set one. Later duplicate directives are left alone.
func Rewrite(doc, value string) Result {
	loc := themeLine.FindStringIndex(doc)
	if loc == nil {
		return Result{Text: doc}
	}

	line := "theme = " + value
	// Keep CRLF line endings intact; .+ swallows the \r.
	if strings.HasSuffix(doc[loc[0]:loc[1]], "\r") {
		line += "\r"
	}

	text := doc[:loc[0]] + line + doc[loc[1]:]
	return Result{Text: text, Changed: text != doc}
}

// RewritePinned points Ghostty at a single theme. Any light:/dark: composite
// value on the directive is replaced.
func RewritePinned(doc, externalName string) Result {
	return Rewrite(doc, externalName)
}

// RewritePair points Ghostty at a pair so it switches with the OS by itself.
func RewritePair(doc string, p catalog.Pair) Result {
	return Rewrite(doc, resolver.PairDirective(p))
}

// CurrentValue returns the value of the first theme directive in doc.
func CurrentValue(doc string) (string, bool) {
	m := themeLine.FindString(doc)
	if m == "" {
		return "", false
	}
	_, v, _ := strings.Cut(m, "=")
	return strings.TrimSpace(v), true
}
