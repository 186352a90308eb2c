package match

import "sort"

// MinSuggestionScore is the lowest KeySimilarity reported by Suggest.
const MinSuggestionScore = 0.6

// Candidate is a known key scored against an unknown one.
type Candidate struct {
	Key   string
	Score float64
}

// CandidateList is sorted by score descending, then key.
type CandidateList []Candidate

func (c CandidateList) Len() int      { return len(c) }
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Key < c[j].Key
}

// Keys returns the candidate keys in order.
func (c CandidateList) Keys() []string {
	keys := make([]string, len(c))
	for i, cand := range c {
		keys[i] = cand.Key
	}

	return keys
}

// Rank scores every known key against key and returns those at or above
// MinSuggestionScore.
func Rank(key string, known []string) CandidateList {
	var out CandidateList

	for _, k := range known {
		score := KeySimilarity(key, k)
		if score >= MinSuggestionScore {
			out = append(out, Candidate{Key: k, Score: score})
		}
	}

	sort.Sort(out)

	return out
}

// Suggest returns up to limit known keys resembling key, best first.
// A non-positive limit returns every match.
func Suggest(key string, known []string, limit int) []string {
	ranked := Rank(key, known)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked.Keys()
}
