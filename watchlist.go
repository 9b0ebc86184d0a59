package advisor

import (
	"strings"
	"unicode"
)

// DefaultWatchlist is proposed when the user has not entered symbols yet.
const DefaultWatchlist = "AAPL, MSFT, TSLA"

// ParseWatchlist extracts ticker symbols from free text. Symbols are separated
// by commas, semicolons or white space, upper-cased and deduplicated, in the
// order they first appear.
func ParseWatchlist(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	seen := make(map[string]bool, len(fields))
	var res []string
	for _, f := range fields {
		s := strings.ToUpper(f)
		if seen[s] {
			continue
		}
		seen[s] = true
		res = append(res, s)
	}
	return res
}
