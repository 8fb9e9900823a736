package models

// IngredientsNotSpecified is the ingredients text of a fallback product
// record, used whenever the upstream lookup could not supply one.
const IngredientsNotSpecified = "Ingredients not specified"

// Product is the normalized record the engine consumes, regardless of
// which upstream produced it. Only Ingredients and Nutriments matter to
// the analysis; the rest is display metadata passed through to clients.
type Product struct {
	Name            string             `json:"name"`
	Brand           string             `json:"brand"`
	Ingredients     string             `json:"ingredients"`
	Image           string             `json:"image"`
	Categories      string             `json:"categories"`
	Nutriments      map[string]float64 `json:"nutriments"`
	Allergens       string             `json:"allergens"`
	NutritionGrades string             `json:"nutrition_grades"`
}

// ProductHit is a lightweight search result for the product search endpoint.
type ProductHit struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Image string `json:"image"`
}
