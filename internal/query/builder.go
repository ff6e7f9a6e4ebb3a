package query

// FromSkills builds the default matching query from an ordered skill list:
// every skill becomes an optional OR term, so any one of them may match and
// the index ranks across all of them. No AND/NOT inference is applied.
func FromSkills(skills []string) string {
	p := Parsed{OrTerms: skills}
	return p.Serialize()
}
