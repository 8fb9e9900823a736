package services

import "testing"

func TestMatchConditionExact(t *testing.T) {
	cond, ok := MatchCondition("Diabetes")
	if !ok || cond.Name != "Diabetes" {
		t.Fatalf("exact match failed: %v %v", cond, ok)
	}
	cond, ok = MatchCondition("  hypertension  ")
	if !ok || cond.Name != "Hypertension" {
		t.Fatalf("trimmed case-insensitive match failed: %v %v", cond, ok)
	}
}

func TestMatchConditionAliases(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"sugar", "Diabetes"},
		{"bp", "Hypertension"},
		{"high bp", "Hypertension"},
		{"hypertention", "Hypertension"},
		{"cardiac", "Heart Disease"},
		{"celiac", "Gluten Intolerance"},
		{"dairy", "Lactose Intolerance"},
	}
	for _, tc := range cases {
		cond, ok := MatchCondition(tc.query)
		if !ok {
			t.Errorf("MatchCondition(%q) found nothing, want %s", tc.query, tc.want)
			continue
		}
		if cond.Name != tc.want {
			t.Errorf("MatchCondition(%q) = %s, want %s", tc.query, cond.Name, tc.want)
		}
	}
}

func TestMatchConditionSubstring(t *testing.T) {
	cond, ok := MatchCondition("my blood pressure is high today")
	if !ok || cond.Name != "Hypertension" {
		t.Fatalf("substring match failed: %v %v", cond, ok)
	}
	// Partially typed alias: the alias contains the query.
	cond, ok = MatchCondition("blood pres")
	if !ok || cond.Name != "Hypertension" {
		t.Fatalf("prefix-of-alias match failed: %v %v", cond, ok)
	}
}

func TestMatchConditionFuzzy(t *testing.T) {
	// Not an alias, not a substring of one; only edit distance gets
	// this to Hypertension.
	cond, ok := MatchCondition("hypertensio")
	if !ok || cond.Name != "Hypertension" {
		t.Fatalf("fuzzy match failed: %v %v", cond, ok)
	}
}

func TestMatchConditionTypoTable(t *testing.T) {
	cond, ok := MatchCondition("diabetis")
	if !ok || cond.Name != "Diabetes" {
		t.Fatalf("typo table match failed: %v %v", cond, ok)
	}
}

func TestMatchConditionMisses(t *testing.T) {
	for _, q := range []string{"", "   ", "xyzxyz"} {
		if cond, ok := MatchCondition(q); ok {
			t.Errorf("MatchCondition(%q) unexpectedly matched %s", q, cond.Name)
		}
	}
}

func TestMatchConditionPriority(t *testing.T) {
	// "fat" is an alias of both High Cholesterol and Obesity; insertion
	// order makes High Cholesterol win.
	cond, ok := MatchCondition("fat")
	if !ok || cond.Name != "High Cholesterol" {
		t.Fatalf("alias priority broken: %v %v", cond, ok)
	}
}
