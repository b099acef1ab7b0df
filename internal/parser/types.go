package parser

// Match is a resolved preset-name lookup.
type Match struct {
	Canonical string
	Alias     string
	Score     float64
	Source    string // "exact", "prefix" or "lev"
}
