package services

import (
	"strings"

	"github.com/anurudhk499/SafeBite/models"
	"github.com/anurudhk499/SafeBite/utils"
)

// Fuzzy-match thresholds. Aliases are trusted more than the typo table, so
// they tolerate less distance.
const (
	aliasSimilarityThreshold = 0.7
	typoSimilarityThreshold  = 0.6
)

// MatchCondition resolves free-typed input ("high bp", "diabetis") to a
// knowledge-base condition. Strategies run in strict priority order and
// the first hit wins; there is no scoring across candidates. Within each
// strategy, conditions are checked in knowledge-base insertion order.
func MatchCondition(input string) (*models.Condition, bool) {
	query := strings.ToLower(strings.TrimSpace(input))
	if query == "" {
		return nil, false
	}

	// 1. Exact canonical name.
	for i := range conditions {
		if strings.ToLower(conditions[i].Name) == query {
			return &conditions[i], true
		}
	}

	// 2. Exact alias.
	for i := range conditions {
		for _, alias := range conditions[i].Aliases {
			if alias == query {
				return &conditions[i], true
			}
		}
	}

	// 3. Substring in either direction: "blood pressure high today"
	// contains the alias, and the alias "blood pressure" contains the
	// partially typed "blood pres".
	for i := range conditions {
		for _, alias := range conditions[i].Aliases {
			if strings.Contains(query, alias) || strings.Contains(alias, query) {
				return &conditions[i], true
			}
		}
	}

	// 4. Edit-distance similarity against aliases.
	for i := range conditions {
		for _, alias := range conditions[i].Aliases {
			if utils.Similarity(alias, query) > aliasSimilarityThreshold {
				return &conditions[i], true
			}
		}
	}

	// 5. Curated typo table, with a looser threshold.
	for _, tc := range typoCorrections {
		if strings.Contains(query, tc.typo) || utils.Similarity(query, tc.typo) > typoSimilarityThreshold {
			return ConditionByName(tc.condition)
		}
	}

	return nil, false
}
