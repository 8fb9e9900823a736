package models

// RiskTier classifies an ingredient or a whole product.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// IngredientAssessment is the per-ingredient verdict. The tier only ever
// escalates while an ingredient is evaluated: once a condition forces
// high, no later finding downgrades it.
type IngredientAssessment struct {
	Name    string   `json:"name"`
	Risk    RiskTier `json:"risk"`
	Reasons []string `json:"reasons"`
	Score   int      `json:"score"`
}

// AnalysisSummary counts assessments per tier.
type AnalysisSummary struct {
	Total      int `json:"total"`
	HighRisk   int `json:"highRisk"`
	MediumRisk int `json:"mediumRisk"`
	LowRisk    int `json:"lowRisk"`
}

// IngredientRisk links one flagged ingredient to a condition inside a
// MedicalRisk summary. Risk is the ingredient score rescaled to [0,1].
type IngredientRisk struct {
	Ingredient string  `json:"ingredient"`
	Risk       float64 `json:"risk"`
	Reason     string  `json:"reason"`
}

// MedicalRisk summarizes, for one active condition, every ingredient that
// was flagged because of it.
type MedicalRisk struct {
	Disease     string           `json:"disease"`
	Icon        string           `json:"icon"`
	Severity    RiskTier         `json:"severity"`
	DisplayName string           `json:"displayName"`
	Risks       []IngredientRisk `json:"risks"`
	Advice      string           `json:"advice"`
}

// ProductAnalysis is the complete result for one analysis request. Built
// fresh per request, never persisted.
type ProductAnalysis struct {
	OverallRisk  RiskTier               `json:"overallRisk"`
	RiskScore    int                    `json:"riskScore"`
	Ingredients  []IngredientAssessment `json:"ingredients"`
	MedicalRisks []MedicalRisk          `json:"medicalRisks"`
	Summary      AnalysisSummary        `json:"summary"`
	Insights     []string               `json:"insights"`
}

// Alternative is one ranked substitute product suggestion.
type Alternative struct {
	Name             string   `json:"name"`
	Brand            string   `json:"brand"`
	Image            string   `json:"image"`
	Benefits         []string `json:"benefits"`
	MatchScore       int      `json:"matchScore"`
	Reason           string   `json:"reason"`
	Category         string   `json:"category"`
	NutritionalValue string   `json:"nutritionalValue"`
}
