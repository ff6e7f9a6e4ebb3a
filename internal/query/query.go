// Package query implements the boolean/phrase search grammar used by the
// job index: quoted phrases, +required terms, -excluded terms, and bare
// optional terms.
package query

import (
	"regexp"
	"strings"
)

// phrasePattern matches balanced double-quote pairs only. An unmatched
// quote falls through to plain token splitting.
var phrasePattern = regexp.MustCompile(`"([^"]*)"`)

// Parsed is a search query broken into typed term groups. Terms within a
// group preserve input order and are not deduplicated.
type Parsed struct {
	Phrases  []string
	AndTerms []string
	NotTerms []string
	OrTerms  []string
}

// Parse splits raw search input into phrases and marked terms. Phrases are
// extracted first and keep their original casing; remaining tokens are
// classified by their leading marker character and lower-cased.
func Parse(raw string) Parsed {
	var p Parsed

	rest := phrasePattern.ReplaceAllStringFunc(raw, func(m string) string {
		p.Phrases = append(p.Phrases, strings.TrimSpace(m[1:len(m)-1]))
		return " "
	})

	for _, tok := range strings.Fields(rest) {
		switch {
		case strings.HasPrefix(tok, "+"):
			p.AndTerms = append(p.AndTerms, strings.ToLower(tok[1:]))
		case strings.HasPrefix(tok, "-"):
			p.NotTerms = append(p.NotTerms, strings.ToLower(tok[1:]))
		default:
			p.OrTerms = append(p.OrTerms, strings.ToLower(tok))
		}
	}

	return p
}

// Serialize rebuilds the query string for the job index: phrases first,
// then +required terms, then optional terms, then -excluded terms.
// Serialize(Parse(x)) is semantically equivalent to x, not byte-identical.
func (p Parsed) Serialize() string {
	parts := make([]string, 0, len(p.Phrases)+len(p.AndTerms)+len(p.OrTerms)+len(p.NotTerms))

	for _, phrase := range p.Phrases {
		parts = append(parts, `"`+phrase+`"`)
	}
	for _, term := range p.AndTerms {
		parts = append(parts, "+"+term)
	}
	parts = append(parts, p.OrTerms...)
	for _, term := range p.NotTerms {
		parts = append(parts, "-"+term)
	}

	return strings.Join(parts, " ")
}
