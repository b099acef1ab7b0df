// Package parser turns user-facing plant definitions into the forms the
// core consumes: textual rewrite-rule strings into rule maps, and loosely
// typed preset names into canonical preset IDs.
package parser

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseRules parses a rule definition string such as
//
//	X=F[+X][-X]FX; F=FF
//
// Entries are separated by ';' or newlines; '=' or '->' separates a
// single-glyph symbol from its replacement. Whitespace around entries is
// ignored and whitespace inside a replacement is stripped.
func ParseRules(input string) (map[rune]string, error) {
	rules := make(map[rune]string)

	entries := strings.FieldsFunc(input, func(r rune) bool {
		return r == ';' || r == '\n'
	})
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		var lhs, rhs string
		if i := strings.Index(entry, "->"); i >= 0 {
			lhs, rhs = entry[:i], entry[i+2:]
		} else if i := strings.Index(entry, "="); i >= 0 {
			lhs, rhs = entry[:i], entry[i+1:]
		} else {
			return nil, fmt.Errorf("rule %q is missing '=' or '->'", entry)
		}

		symRunes := []rune(strings.TrimSpace(lhs))
		if len(symRunes) != 1 {
			return nil, fmt.Errorf("rule symbol %q must be a single glyph", strings.TrimSpace(lhs))
		}
		sym := symRunes[0]

		replacement := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, rhs)
		if replacement == "" {
			return nil, fmt.Errorf("rule for %q has an empty replacement", string(sym))
		}

		if _, dup := rules[sym]; dup {
			return nil, fmt.Errorf("duplicate rule for %q", string(sym))
		}
		rules[sym] = replacement
	}

	return rules, nil
}
