package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// foreignIngredientNames maps common non-English label words to the
// English canonical term the trigger taxonomy is written in. Kept as an
// ordered list because NormalizeIngredient takes the first substring hit.
var foreignIngredientNames = []struct{ foreign, english string }{
	{"sucre", "sugar"},
	{"azúcar", "sugar"},
	{"zucker", "sugar"},
	{"socker", "sugar"},
	{"şeker", "sugar"},
	{"sel", "salt"},
	{"salz", "salt"},
	{"sale", "salt"},
	{"só", "salt"},
	{"tuz", "salt"},
	{"sare", "salt"},
	{"gras", "fat"},
	{"fett", "fat"},
	{"grasso", "fat"},
	{"zsír", "fat"},
	{"blé", "wheat"},
	{"weizen", "wheat"},
	{"grano", "wheat"},
	{"orge", "barley"},
	{"gerste", "barley"},
	{"lait", "milk"},
	{"milch", "milk"},
	{"leche", "milk"},
	{"fromage", "cheese"},
	{"käse", "cheese"},
	{"queso", "cheese"},
}

// foreignKeywords is the flat detection list, independent of the mapping
// above. Used as a last-resort medium-risk signal when no trigger already
// explained an ingredient.
var foreignKeywords = []string{
	"sucre", "azúcar", "zucker", "sel", "salz", "sale",
	"gras", "fett", "grasso", "lait", "milch", "leche",
	"fromage", "käse", "queso", "blé", "weizen", "orge",
}

// NormalizeIngredient maps a foreign-language ingredient token to its
// English canonical form: exact mapping first, then the first mapping
// whose foreign key appears inside the token, else the token unchanged.
func NormalizeIngredient(token string) string {
	for _, m := range foreignIngredientNames {
		if token == m.foreign {
			return m.english
		}
	}
	for _, m := range foreignIngredientNames {
		if strings.Contains(token, m.foreign) {
			return m.english
		}
	}
	return token
}

// DetectForeignIngredients returns every known foreign keyword contained
// in the token, in detection-list order.
func DetectForeignIngredients(token string) []string {
	var hits []string
	for _, k := range foreignKeywords {
		if strings.Contains(token, k) {
			hits = append(hits, k)
		}
	}
	return hits
}

// Letters and digits survive cleaning so accented ingredient words (blé,
// käse) still reach the normalizer; everything else except commas becomes
// a space.
var (
	ingredientCleaner = regexp.MustCompile(`[^\p{L}\p{N}\s,]`)
	spaceCollapser    = regexp.MustCompile(`\s+`)
)

// ExtractIngredients splits a raw ingredients label into lower-cased
// ingredient tokens. Tokens of two characters or fewer are noise
// (quantifiers, stray abbreviations) and are dropped.
func ExtractIngredients(text string) []string {
	if text == "" || text == "Ingredients not specified" {
		return nil
	}

	cleaned := strings.ToLower(text)
	cleaned = ingredientCleaner.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(spaceCollapser.ReplaceAllString(cleaned, " "))

	parts := strings.Split(cleaned, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) > 2 {
			out = append(out, p)
		}
	}
	return out
}
