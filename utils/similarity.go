package utils

// Levenshtein returns the single-character insert/delete/substitute edit
// distance between a and b, computed with a single rolling row so memory
// stays proportional to the shorter string.
func Levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if len(b) > len(a) {
		a, b = b, a
	}

	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		last := i
		diag := prev[0]
		prev[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			last = minInt(prev[j]+1, minInt(last+1, diag+cost))
			diag = prev[j]
			prev[j] = last
		}
	}
	return prev[len(b)]
}

// Similarity maps edit distance into [0,1]: identical strings score 1,
// fully different strings approach 0.
func Similarity(a, b string) float64 {
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	if longer == 0 {
		return 1
	}
	return float64(longer-Levenshtein(a, b)) / float64(longer)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
