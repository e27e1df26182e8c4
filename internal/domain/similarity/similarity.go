// Package similarity scores how well a free-text query matches a mountain
// name. The scoring ladder is a fixed heuristic: rules are tried in priority
// order and the first hit wins, so exact matches always outrank prefixes,
// prefixes outrank abbreviations, and so on. The constants are part of the
// ranking contract and must not be retuned independently.
package similarity

import "strings"

const (
	// BestMatchThreshold separates best matches from the secondary bucket.
	BestMatchThreshold = 0.7
	// InclusionThreshold is the composite floor below which a candidate is
	// dropped from results entirely.
	InclusionThreshold = 0.15

	scoreExact       = 1.0
	scorePrefix      = 0.95
	scoreAbbrev      = 0.85
	scoreSubsequence = 0.7
	scoreSubstring   = 0.6
	scoreOverlap     = 0.4

	// provinceContainsScore applies when the province text contains the
	// query; provinceScaleFactor discounts a plain similarity score against
	// the province name.
	provinceContainsScore = 0.5
	provinceScaleFactor   = 0.4
	// descriptionContainsScore applies when the description contains the query.
	descriptionContainsScore = 0.4
)

// Abbreviations derives plausible shorthand forms of a name: progressive
// prefixes, the consonant skeleton ("semeru" -> "smr") with its own prefixes,
// and the first letter glued to the remaining consonants. Input is lowercased;
// duplicates are removed.
func Abbreviations(name string) []string {
	lower := strings.ToLower(name)

	seen := make(map[string]struct{})
	var out []string
	add := func(s string) {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}

	// Prefixes start at two characters to avoid single-letter matches.
	for i := 2; i <= len(lower); i++ {
		add(lower[:i])
	}

	consonants := stripVowels(lower)
	if len(consonants) >= 2 {
		add(consonants)
		for i := 2; i <= len(consonants); i++ {
			add(consonants[:i])
		}
	}

	if len(lower) > 0 {
		firstAndConsonants := lower[:1] + stripVowels(lower[1:])
		if len(firstAndConsonants) >= 2 {
			add(firstAndConsonants)
		}
	}

	return out
}

// Score computes the similarity between a query and a candidate name,
// case-insensitive, in [0,1].
func Score(query, name string) float64 {
	q := strings.ToLower(query)
	n := strings.ToLower(name)

	if n == q {
		return scoreExact
	}

	if strings.HasPrefix(n, q) {
		return scorePrefix
	}

	for _, abbrev := range Abbreviations(n) {
		if abbrev == q {
			return scoreAbbrev
		}
	}

	// Subsequence match: every query character appears in the name in order.
	// Tighter queries against shorter names score higher.
	if isSubsequence(q, n) {
		return scoreSubsequence * float64(len(q)) / float64(len(n))
	}

	if strings.Contains(n, q) {
		return scoreSubstring
	}

	// Fallback: fraction of query characters present anywhere in the name.
	matched := 0
	for _, ch := range q {
		if strings.ContainsRune(n, ch) {
			matched++
		}
	}
	longest := len(q)
	if len(n) > longest {
		longest = len(n)
	}
	if longest == 0 {
		return 0
	}
	return float64(matched) / float64(longest) * scoreOverlap
}

// IsBestMatch reports whether the name alone scores at or above the
// best-match threshold. Province and description never promote a candidate
// into the best bucket.
func IsBestMatch(query, name string) bool {
	return Score(query, name) >= BestMatchThreshold
}

// CompositeScore folds province and description evidence into a secondary
// score for candidates that missed the best-match threshold. The result is
// the max of the name score and the discounted province/description scores.
func CompositeScore(query, name, province, description string) float64 {
	q := strings.ToLower(query)

	nameScore := Score(query, name)

	var provinceScore float64
	if province != "" {
		if strings.Contains(strings.ToLower(province), q) {
			provinceScore = provinceContainsScore
		} else {
			provinceScore = Score(query, province) * provinceScaleFactor
		}
	}

	var descriptionScore float64
	if description != "" && strings.Contains(strings.ToLower(description), q) {
		descriptionScore = descriptionContainsScore
	}

	score := nameScore
	if provinceScore > score {
		score = provinceScore
	}
	if descriptionScore > score {
		score = descriptionScore
	}
	return score
}

func stripVowels(s string) string {
	var b strings.Builder
	for _, ch := range s {
		switch ch {
		case 'a', 'e', 'i', 'o', 'u':
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// isSubsequence reports whether all characters of q appear in n in order,
// not necessarily contiguously.
func isSubsequence(q, n string) bool {
	if q == "" {
		return true
	}
	j := 0
	for i := 0; i < len(n) && j < len(q); i++ {
		if n[i] == q[j] {
			j++
		}
	}
	return j == len(q)
}
