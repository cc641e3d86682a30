package resolver

import "strings"

// Separator ends resolution; the tokens after it are returned as ignored.
const Separator = "--"

// HelpKeywords trigger the usage page. Matching is case-insensitive.
var HelpKeywords = []string{"help", "usage", "what", "how", "?"}

type tokenKind int

const (
	positional tokenKind = iota
	keyword
	help
	separator
)

type token struct {
	kind  tokenKind
	raw   string
	name  string
	value string
}

// classify determines what a single raw argument means. A token is a keyword
// when it contains "=" after a non-empty name; whether the name is declared
// is checked by the resolver.
func classify(raw string) token {
	if raw == Separator {
		return token{kind: separator, raw: raw}
	}
	if IsHelpKeyword(raw) {
		return token{kind: help, raw: raw}
	}
	if name, value, ok := strings.Cut(raw, "="); ok && name != "" {
		return token{kind: keyword, raw: raw, name: name, value: value}
	}
	return token{kind: positional, raw: raw, value: raw}
}

// IsHelpKeyword reports whether s requests the usage page.
func IsHelpKeyword(s string) bool {
	for _, kw := range HelpKeywords {
		if strings.EqualFold(s, kw) {
			return true
		}
	}
	return false
}
