package matcher

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

// Score computes a normalized similarity score between two product names
// in the 0-100 range. It is the maximum of the plain, token-sorted and
// token-set ratios of the normalized names, which makes it symmetric,
// deterministic and robust against word order and partial naming.
func Score(a, b string) float64 {
	tokensA := normalizeTokens(a)
	tokensB := normalizeTokens(b)

	plain := ratio(strings.Join(tokensA, " "), strings.Join(tokensB, " "))
	tokenSort := tokenSortRatio(tokensA, tokensB)
	tokenSet := tokenSetRatio(tokensA, tokensB)

	return max(plain, tokenSort, tokenSet)
}

// ratio is an indel similarity: 2*LCS / (len(a)+len(b)), scaled to 0-100.
// Two empty strings are identical by definition.
func ratio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 100
	}

	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	return 200 * float64(lcsLength(a, b)) / float64(len(a)+len(b))
}

func tokenSortRatio(tokensA, tokensB []string) float64 {
	return ratio(sortedJoin(tokensA), sortedJoin(tokensB))
}

// tokenSetRatio scores the sorted token intersection against each full
// token set. Names where one token set contains the other score 100.
func tokenSetRatio(tokensA, tokensB []string) float64 {
	uniqueA := lo.Uniq(tokensA)
	uniqueB := lo.Uniq(tokensB)

	common := sortedJoin(lo.Intersect(uniqueA, uniqueB))
	restA := sortedJoin(lo.Without(uniqueA, lo.Intersect(uniqueA, uniqueB)...))
	restB := sortedJoin(lo.Without(uniqueB, lo.Intersect(uniqueA, uniqueB)...))

	if common == "" {
		return ratio(restA, restB)
	}

	fullA := strings.TrimSpace(common + " " + restA)
	fullB := strings.TrimSpace(common + " " + restB)

	return max(
		ratio(common, fullA),
		ratio(common, fullB),
		ratio(fullA, fullB),
	)
}

// lcsLength computes the longest common subsequence length with a
// two-row DP, same space optimization as a textbook edit distance.
func lcsLength(a, b string) int {
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for j := 1; j <= len(b); j++ {
		for i := 1; i <= len(a); i++ {
			if a[i-1] == b[j-1] {
				curr[i] = prev[i-1] + 1
			} else {
				curr[i] = max(prev[i], curr[i-1])
			}
		}

		prev, curr = curr, prev
		for i := range curr {
			curr[i] = 0
		}
	}

	return prev[len(a)]
}

var numericUnitRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)[a-z]+$`)

var caseFolder = cases.Fold()

// normalizeTokens folds case, splits on separators and strips unit
// suffixes from numeric tokens so "128GB" and "128" compare equal.
func normalizeTokens(s string) []string {
	folded := caseFolder.String(s)

	tokens := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.'
	})

	normalized := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.Trim(token, ".")
		if token == "" {
			continue
		}
		if groups := numericUnitRe.FindStringSubmatch(token); groups != nil {
			token = groups[1]
		}
		normalized = append(normalized, token)
	}

	return normalized
}

func sortedJoin(tokens []string) string {
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.Strings(sorted)

	return strings.Join(sorted, " ")
}
