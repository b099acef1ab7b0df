package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type phrase struct {
	canonical string
	alias     string
}

// Registry resolves free-form preset names against registered canonical IDs
// and their aliases, tolerating typos within a length-scaled edit distance.
type Registry struct {
	phrases []phrase
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(canonical string, aliases ...string) {
	r.phrases = append(r.phrases, phrase{canonical: canonical, alias: normaliseInput(canonical)})
	for _, alias := range aliases {
		norm := normaliseInput(alias)
		if norm == "" {
			continue
		}
		r.phrases = append(r.phrases, phrase{canonical: canonical, alias: norm})
	}
}

// Match resolves input to the best-scoring registered phrase. Exact beats
// prefix beats fuzzy; ties break alphabetically so resolution is stable.
func (r *Registry) Match(input string) (Match, bool) {
	norm := normaliseInput(input)
	if norm == "" {
		return Match{}, false
	}

	var cands []Match
	for _, p := range r.phrases {
		if norm == p.alias {
			cands = append(cands, Match{Canonical: p.canonical, Alias: p.alias, Score: 1, Source: "exact"})
			continue
		}
		if strings.HasPrefix(p.alias, norm) && len(norm) >= 3 {
			cands = append(cands, Match{Canonical: p.canonical, Alias: p.alias, Score: 0.9, Source: "prefix"})
			continue
		}
		if len(norm) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(norm, p.alias)
		if dist > levenshteinLimit(len(p.alias)) {
			continue
		}
		cands = append(cands, Match{
			Canonical: p.canonical,
			Alias:     p.alias,
			Score:     0.72 - 0.08*float64(dist),
			Source:    "lev",
		})
	}
	if len(cands) == 0 {
		return Match{}, false
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			return cands[i].Canonical < cands[j].Canonical
		}
		return cands[i].Score > cands[j].Score
	})
	return cands[0], true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
