package errors

import (
	"sort"
	"strings"
)

// MaxSuggestionDistance is the maximum edit distance for a suggestion to be considered.
const MaxSuggestionDistance = 3

// MaxSuggestions is the maximum number of suggestions to return.
const MaxSuggestions = 3

// Suggestion represents a suggested correction with its edit distance.
type Suggestion struct {
	Value    string
	Distance int
}

// threshold scales the allowed edit distance with the length of the word,
// so that short identifiers do not match every other short word.
func threshold(word string) int {
	switch n := len(word); {
	case n <= 3:
		return 1
	case n <= 5:
		return 2
	default:
		return MaxSuggestionDistance
	}
}

// SuggestSimilar finds similar strings from candidates for the given target.
// Returns up to MaxSuggestions suggestions within MaxSuggestionDistance,
// closest first. Exact matches are never suggested.
func SuggestSimilar(target string, candidates []string) []Suggestion {
	if target == "" || len(candidates) == 0 {
		return nil
	}
	target = strings.ToLower(target)
	limit := threshold(target)

	var suggestions []Suggestion
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == "" || lower == target {
			continue
		}
		if dist := levenshteinDistance(target, lower); dist <= limit {
			suggestions = append(suggestions, Suggestion{Value: candidate, Distance: dist})
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Distance != suggestions[j].Distance {
			return suggestions[i].Distance < suggestions[j].Distance
		}
		return suggestions[i].Value < suggestions[j].Value
	})
	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}

// FormatSuggestions formats suggestions as a user-friendly string.
// Returns empty string if no suggestions.
func FormatSuggestions(suggestions []Suggestion) string {
	switch len(suggestions) {
	case 0:
		return ""
	case 1:
		return "Did you mean '" + suggestions[0].Value + "'?"
	}
	quoted := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		quoted = append(quoted, "'"+s.Value+"'")
	}
	return "Did you mean one of: " + strings.Join(quoted, ", ") + "?"
}

// levenshteinDistance computes the edit distance between two strings using
// two rolling rows.
func levenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}
	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(ra)]
}
