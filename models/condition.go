package models

// Severity ranks how strongly a condition reacts to its trigger foods.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Condition is one entry of the medical knowledge base. Conditions are
// loaded once at startup and never mutated afterwards.
type Condition struct {
	Name     string   `json:"name"`
	Triggers []string `json:"triggers"`
	Aliases  []string `json:"aliases"`
	Severity Severity `json:"severity"`
	Advice   string   `json:"advice"`
	Icon     string   `json:"icon"`
	Category string   `json:"category"`
}

// ConditionSummary is the display shape the listing endpoints return.
type ConditionSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Color    string   `json:"color"`
	Severity Severity `json:"severity"`
	Category string   `json:"category"`
}
