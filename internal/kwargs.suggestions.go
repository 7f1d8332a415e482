package internal

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// FindSimilarNames finds names from candidates that are similar to target.
// Subsequence matches (abbreviations such as "usr" for "user") come first,
// ordered by fuzzy score, followed by typo matches within a Levenshtein
// distance of max(2, len(target)/2). Duplicates are reported once.
func FindSimilarNames(target string, candidates []string, maxSuggestions int) []string {
	if target == "" || len(candidates) == 0 || maxSuggestions <= 0 {
		return nil
	}

	seen := make(map[string]bool, len(candidates))
	result := make([]string, 0, maxSuggestions)
	add := func(name string) {
		if !seen[name] && len(result) < maxSuggestions {
			seen[name] = true
			result = append(result, name)
		}
	}

	for _, match := range fuzzy.Find(target, candidates) {
		add(match.Str)
	}

	maxDistance := len(target) / 2
	if maxDistance < 2 {
		maxDistance = 2
	}

	type scored struct {
		name     string
		distance int
	}
	var similar []scored
	targetLower := strings.ToLower(target)
	for _, candidate := range candidates {
		if dist := levenshteinDistance(targetLower, strings.ToLower(candidate)); dist <= maxDistance {
			similar = append(similar, scored{name: candidate, distance: dist})
		}
	}
	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].distance < similar[j].distance
	})
	for _, s := range similar {
		add(s.name)
	}

	return result
}

// levenshteinDistance is the minimum number of single-byte insertions,
// deletions or substitutions turning a into b.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// FormatSuggestions formats suggestions as a sentence suffix.
// Example output: ". Did you mean 'name' or 'names'?"
func FormatSuggestions(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	if len(suggestions) == 1 {
		return ". Did you mean '" + suggestions[0] + "'?"
	}

	var sb strings.Builder
	sb.WriteString(". Did you mean ")
	for i, s := range suggestions {
		if i > 0 {
			if i == len(suggestions)-1 {
				sb.WriteString(" or ")
			} else {
				sb.WriteString(", ")
			}
		}
		sb.WriteByte('\'')
		sb.WriteString(s)
		sb.WriteByte('\'')
	}
	sb.WriteByte('?')
	return sb.String()
}
