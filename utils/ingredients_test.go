package utils

import (
	"reflect"
	"testing"
)

func TestNormalizeIngredient(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"sucre", "sugar"},
		{"sucre de canne", "sugar"},
		{"zucker", "sugar"},
		{"salz", "salt"},
		{"lait entier", "milk"},
		{"wheat flour", "wheat flour"},
		{"paprika", "paprika"},
	}
	for _, tc := range cases {
		if got := NormalizeIngredient(tc.in); got != tc.want {
			t.Errorf("NormalizeIngredient(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDetectForeignIngredients(t *testing.T) {
	hits := DetectForeignIngredients("sucre et sel")
	if !reflect.DeepEqual(hits, []string{"sucre", "sel"}) {
		t.Fatalf("DetectForeignIngredients = %v, want [sucre sel]", hits)
	}
	if got := DetectForeignIngredients("water"); got != nil {
		t.Fatalf("expected no hits for plain water, got %v", got)
	}
}

func TestExtractIngredients(t *testing.T) {
	got := ExtractIngredients("Sugar, Salt (iodized), Wheat Flour!")
	want := []string{"sugar", "salt iodized", "wheat flour"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractIngredients = %v, want %v", got, want)
	}
}

func TestExtractIngredientsDropsShortTokens(t *testing.T) {
	got := ExtractIngredients("E2, of, sugar")
	if !reflect.DeepEqual(got, []string{"sugar"}) {
		t.Fatalf("short tokens survived: %v", got)
	}
}

func TestExtractIngredientsEmpty(t *testing.T) {
	if got := ExtractIngredients(""); got != nil {
		t.Fatalf("empty label produced %v", got)
	}
	if got := ExtractIngredients("Ingredients not specified"); got != nil {
		t.Fatalf("placeholder label produced %v", got)
	}
}

func TestExtractIngredientsKeepsAccents(t *testing.T) {
	got := ExtractIngredients("blé, käse")
	if !reflect.DeepEqual(got, []string{"blé", "käse"}) {
		t.Fatalf("accented tokens mangled: %v", got)
	}
}
