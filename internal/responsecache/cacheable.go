package responsecache

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// personalTerms mark a query as tied to the asker or to the current date,
// so its answer cannot be replayed to someone else or later.
var personalTerms = []string{
	"my", "mine", "i am", "i have", "i will", "i want", "i need",
	"me", "myself", "our", "we", "us", "you", "your",
	"today", "yesterday", "tomorrow", "this week", "last week", "next week",
}

var personalTermPattern = buildTermPattern(personalTerms)

var whitespace = regexp.MustCompile(`\s+`)

func buildTermPattern(terms []string) *regexp.Regexp {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(t), " ", `\s+`)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// NormalizeKey case-folds, trims, collapses internal whitespace and drops
// trailing sentence punctuation, so "Fees?" and "fees" share a key.
func NormalizeKey(query string) string {
	key := whitespace.ReplaceAllString(strings.TrimSpace(strings.ToLower(query)), " ")
	return strings.TrimSpace(strings.TrimRight(key, "?!. "))
}

// ContainsPersonalReference reports whether query uses a first/second-person
// pronoun or a relative date term as a whole word.
func ContainsPersonalReference(query string) bool {
	return personalTermPattern.MatchString(NormalizeKey(query))
}

// isCacheable applies the length bound and the personal-reference filter.
func isCacheable(query string, maxLen int) bool {
	if strings.TrimSpace(query) == "" {
		return false
	}
	if utf8.RuneCountInString(query) > maxLen {
		return false
	}
	return !ContainsPersonalReference(query)
}
