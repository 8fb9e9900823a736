package services

import (
	"strings"

	"github.com/anurudhk499/SafeBite/models"
)

// conditions is the medical knowledge base. Order matters: the matcher and
// the listing endpoints iterate in this insertion order, so reordering
// entries changes first-match behavior.
var conditions = []models.Condition{
	{
		Name:     "Diabetes",
		Triggers: []string{"sugar", "syrup", "fructose", "glucose", "sucrose", "dextrose", "maltodextrin", "honey", "molasses", "corn syrup", "high fructose", "cane sugar", "brown sugar"},
		Aliases:  []string{"sugar", "diabatese", "diabetis", "diabetic", "blood sugar", "high sugar", "diab", "sugar problem"},
		Advice:   "High glycemic index causes rapid blood sugar spikes.",
		Icon:     "syringe",
		Severity: models.SeverityHigh,
		Category: "Metabolic",
	},
	{
		Name:     "Hypertension",
		Triggers: []string{"salt", "sodium", "msg", "monosodium glutamate", "soy sauce", "sea salt", "sodium benzoate", "sodium chloride"},
		Aliases:  []string{"high bp", "blood pressure", "bp", "hypertention", "high pressure", "blood pressure high", "bp high"},
		Advice:   "High sodium content raises blood pressure.",
		Icon:     "heart",
		Severity: models.SeverityHigh,
		Category: "Cardiovascular",
	},
	{
		Name:     "Heart Disease",
		Triggers: []string{"hydrogenated", "trans fat", "palm oil", "lard", "shortening", "saturated fat", "butter fat"},
		Aliases:  []string{"heart", "cardiac", "heart problem", "heart issue", "cardio", "heart attack risk", "cardiovascular"},
		Advice:   "Trans fats and saturated fats increase LDL cholesterol.",
		Icon:     "heart-pulse",
		Severity: models.SeverityHigh,
		Category: "Cardiovascular",
	},
	{
		Name:     "High Cholesterol",
		Triggers: []string{"cholesterol", "saturated fat", "butter", "cream", "cheese", "egg yolk", "red meat"},
		Aliases:  []string{"cholesterol", "high cholesterol", "high fat", "lipid", "fat", "ldl", "bad cholesterol"},
		Advice:   "Dietary cholesterol raises LDL (bad) cholesterol.",
		Icon:     "droplet",
		Severity: models.SeverityMedium,
		Category: "Cardiovascular",
	},
	{
		Name:     "Obesity",
		Triggers: []string{"sugar", "high fructose", "corn syrup", "saturated fat", "fried", "high calorie"},
		Aliases:  []string{"obesity", "overweight", "weight", "fat", "bmi", "weight gain", "over weight"},
		Advice:   "High calorie density promotes weight gain.",
		Icon:     "scale",
		Severity: models.SeverityMedium,
		Category: "Metabolic",
	},
	{
		Name:     "Kidney Issues",
		Triggers: []string{"potassium", "phosphorus", "sodium", "high protein", "mineral salts"},
		Aliases:  []string{"kidney", "renal", "kidney problem", "kidney disease", "kidney failure", "renal disease"},
		Advice:   "High mineral content strains kidney function.",
		Icon:     "bean",
		Severity: models.SeverityHigh,
		Category: "Renal",
	},
	{
		Name:     "Allergies",
		Triggers: []string{"peanut", "milk", "soy", "wheat", "egg", "tree nut", "almond", "shellfish"},
		Aliases:  []string{"allergy", "allergic", "food allergy", "allergies", "allergic reaction", "food sensitivity"},
		Advice:   "Contains common allergens.",
		Icon:     "alert",
		Severity: models.SeverityCritical,
		Category: "Immune",
	},
	{
		Name:     "Gluten Intolerance",
		Triggers: []string{"wheat", "gluten", "barley", "rye", "spelt", "malt"},
		Aliases:  []string{"gluten", "celiac", "wheat allergy", "gluten sensitive", "gluten allergy", "celiac disease"},
		Advice:   "Contains gluten which triggers autoimmune response.",
		Icon:     "wheat",
		Severity: models.SeverityCritical,
		Category: "Immune",
	},
	{
		Name:     "Lactose Intolerance",
		Triggers: []string{"milk", "lactose", "cream", "cheese", "yogurt", "butter", "whey"},
		Aliases:  []string{"lactose", "milk allergy", "dairy", "lactose problem", "milk intolerance"},
		Advice:   "Contains lactose which cannot be digested.",
		Icon:     "milk",
		Severity: models.SeverityHigh,
		Category: "Digestive",
	},
	{
		Name:     "Acid Reflux",
		Triggers: []string{"citric acid", "vinegar", "tomato", "spicy", "fried", "chocolate", "mint"},
		Aliases:  []string{"acid reflux", "gerd", "heartburn", "acid problem", "reflux"},
		Advice:   "Acidic or spicy foods trigger reflux.",
		Icon:     "flame",
		Severity: models.SeverityMedium,
		Category: "Digestive",
	},
	{
		Name:     "IBS",
		Triggers: []string{"garlic", "onion", "beans", "lentils", "wheat", "dairy", "artificial sweeteners"},
		Aliases:  []string{"ibs", "irritable bowel", "bowel syndrome", "stomach problem", "digestive issue"},
		Advice:   "High FODMAP foods trigger IBS symptoms.",
		Icon:     "swirl",
		Severity: models.SeverityMedium,
		Category: "Digestive",
	},
	{
		Name:     "Gout",
		Triggers: []string{"red meat", "seafood", "alcohol", "high fructose", "organ meats"},
		Aliases:  []string{"gout", "uric acid", "joint pain", "gout problem"},
		Advice:   "High purine content increases uric acid.",
		Icon:     "foot",
		Severity: models.SeverityHigh,
		Category: "Metabolic",
	},
	{
		Name:     "Migraine",
		Triggers: []string{"msg", "nitrates", "aged cheese", "chocolate", "alcohol", "artificial sweeteners"},
		Aliases:  []string{"migraine", "headache", "chronic headache", "migraine trigger"},
		Advice:   "Contains migraine triggers.",
		Icon:     "brain",
		Severity: models.SeverityMedium,
		Category: "Neurological",
	},
	{
		Name:     "PCOS",
		Triggers: []string{"sugar", "refined carbs", "processed", "trans fats", "dairy"},
		Aliases:  []string{"pcos", "polycystic", "ovary syndrome", "hormonal imbalance"},
		Advice:   "Increases insulin resistance.",
		Icon:     "butterfly",
		Severity: models.SeverityMedium,
		Category: "Endocrine",
	},
	{
		Name:     "Thyroid Issues",
		Triggers: []string{"soy", "raw cruciferous", "gluten", "processed"},
		Aliases:  []string{"thyroid", "hypothyroid", "hyperthyroid", "thyroid problem"},
		Advice:   "Interferes with thyroid hormone production.",
		Icon:     "butterfly",
		Severity: models.SeverityMedium,
		Category: "Endocrine",
	},
}

// typoCorrections is the curated fallback for misspellings the fuzzy pass
// misses. Checked in order; an entry fires when the input contains the
// typo token or sits within edit-distance similarity 0.6 of it.
var typoCorrections = []struct{ typo, condition string }{
	{"diabatese", "Diabetes"},
	{"diabetis", "Diabetes"},
	{"hypertention", "Hypertension"},
	{"colesterol", "High Cholesterol"},
	{"alergy", "Allergies"},
	{"gluten", "Gluten Intolerance"},
	{"lactose", "Lactose Intolerance"},
	{"bp", "Hypertension"},
	{"heart", "Heart Disease"},
	{"kidney", "Kidney Issues"},
	{"weight", "Obesity"},
	{"migrane", "Migraine"},
}

var conditionColors = map[string]string{
	"Diabetes":            "bg-red-50 border-red-200 text-red-700",
	"Hypertension":        "bg-blue-50 border-blue-200 text-blue-700",
	"Heart Disease":       "bg-pink-50 border-pink-200 text-pink-700",
	"High Cholesterol":    "bg-amber-50 border-amber-200 text-amber-700",
	"Obesity":             "bg-orange-50 border-orange-200 text-orange-700",
	"Kidney Issues":       "bg-cyan-50 border-cyan-200 text-cyan-700",
	"Allergies":           "bg-purple-50 border-purple-200 text-purple-700",
	"Gluten Intolerance":  "bg-yellow-50 border-yellow-200 text-yellow-700",
	"Lactose Intolerance": "bg-indigo-50 border-indigo-200 text-indigo-700",
	"Acid Reflux":         "bg-red-50 border-red-200 text-red-700",
	"IBS":                 "bg-green-50 border-green-200 text-green-700",
	"Gout":                "bg-purple-50 border-purple-200 text-purple-700",
	"Migraine":            "bg-blue-50 border-blue-200 text-blue-700",
	"PCOS":                "bg-purple-50 border-purple-200 text-purple-700",
	"Thyroid Issues":      "bg-pink-50 border-pink-200 text-pink-700",
}

// Conditions returns the full knowledge base in insertion order.
func Conditions() []models.Condition {
	return conditions
}

// ConditionByName resolves an exact (case-insensitive) condition name.
func ConditionByName(name string) (*models.Condition, bool) {
	for i := range conditions {
		if strings.EqualFold(conditions[i].Name, name) {
			return &conditions[i], true
		}
	}
	return nil, false
}

// ConditionSummaries returns the display list for the condition endpoints.
func ConditionSummaries() []models.ConditionSummary {
	out := make([]models.ConditionSummary, 0, len(conditions))
	for i := range conditions {
		out = append(out, SummarizeCondition(&conditions[i]))
	}
	return out
}

// SummarizeCondition builds the display shape for one condition.
func SummarizeCondition(c *models.Condition) models.ConditionSummary {
	return models.ConditionSummary{
		ID:       conditionID(c.Name),
		Name:     c.Name,
		Icon:     c.Icon,
		Color:    conditionColor(c.Name),
		Severity: c.Severity,
		Category: c.Category,
	}
}

func conditionID(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

func conditionColor(name string) string {
	if color, ok := conditionColors[name]; ok {
		return color
	}
	return "bg-gray-50 border-gray-200 text-gray-700"
}

func hasCriticalCondition(active []models.Condition) bool {
	for i := range active {
		if active[i].Severity == models.SeverityCritical {
			return true
		}
	}
	return false
}
