package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/anurudhk499/SafeBite/models"
	"github.com/anurudhk499/SafeBite/utils"
)

// Per-tier ingredient scores and the neutral default for products whose
// ingredient list is missing entirely.
const (
	scoreHighRisk     = 90
	scoreMediumRisk   = 65
	scoreLowRisk      = 10
	scoreEmptyProduct = 20
	aggregateScoreMin = 10
	aggregateScoreMax = 100
)

// riskAccumulator folds (condition x trigger) findings into a running
// verdict. Escalation is one-way: once high is set, later medium findings
// neither downgrade the tier nor add their reason.
type riskAccumulator struct {
	tier    models.RiskTier
	score   int
	reasons []string
}

func (r *riskAccumulator) recordHigh(reason string) {
	r.tier = models.RiskHigh
	r.score = scoreHighRisk
	r.reasons = append(r.reasons, reason)
}

func (r *riskAccumulator) recordMedium(reason string) {
	if r.tier == models.RiskHigh {
		return
	}
	r.tier = models.RiskMedium
	r.score = scoreMediumRisk
	r.reasons = append(r.reasons, reason)
}

// ClassifyIngredient scores one ingredient token against the user's
// active conditions. Both the raw lower-cased token and its normalized
// (foreign-to-English) form are checked against each trigger, in either
// containment direction.
func ClassifyIngredient(ingredient string, active []models.Condition) models.IngredientAssessment {
	lower := strings.ToLower(ingredient)
	normalized := utils.NormalizeIngredient(lower)
	acc := riskAccumulator{tier: models.RiskLow, score: scoreLowRisk}

	for i := range active {
		cond := &active[i]
		for _, trigger := range cond.Triggers {
			if !matchesTrigger(lower, normalized, trigger) {
				continue
			}
			switch cond.Severity {
			case models.SeverityCritical, models.SeverityHigh:
				acc.recordHigh(fmt.Sprintf("HIGH RISK for %s: Contains %s", cond.Name, trigger))
			case models.SeverityMedium:
				acc.recordMedium(fmt.Sprintf("Moderate risk for %s: Contains %s", cond.Name, trigger))
			}
		}
	}

	// Foreign-language fallback: only when nothing above explained the
	// ingredient.
	if len(acc.reasons) == 0 {
		if foreign := utils.DetectForeignIngredients(lower); len(foreign) > 0 {
			acc.recordMedium("Contains foreign language ingredient: " + strings.Join(foreign, ", "))
		}
	}
	if len(acc.reasons) == 0 {
		acc.reasons = append(acc.reasons, "Generally safe ingredient")
	}

	return models.IngredientAssessment{
		Name:    ingredient,
		Risk:    acc.tier,
		Reasons: acc.reasons,
		Score:   acc.score,
	}
}

func matchesTrigger(raw, normalized, trigger string) bool {
	t := strings.ToLower(trigger)
	for _, ing := range [2]string{raw, normalized} {
		if strings.Contains(ing, t) || strings.Contains(t, ing) {
			return true
		}
	}
	return false
}

// TierForScore is the single authoritative mapping from a numeric risk
// score to a tier. Tier labels arriving from upstream scorers are
// advisory only; callers always recompute from the number.
func TierForScore(score int) models.RiskTier {
	switch {
	case score >= 70:
		return models.RiskHigh
	case score >= 40:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// AggregateRiskScore combines per-ingredient scores with optional nutrient
// totals and condition severity. An empty ingredient list yields the
// neutral default of 20 rather than zero: missing data is uncertainty,
// not safety.
func AggregateRiskScore(assessments []models.IngredientAssessment, nutriments map[string]float64, active []models.Condition) int {
	if len(assessments) == 0 {
		return scoreEmptyProduct
	}

	total := 0
	for _, a := range assessments {
		total += a.Score
	}
	score := int(math.Round(float64(total) / float64(len(assessments))))

	if nutriments != nil {
		if pickNutrient(nutriments, "sugars_100g") > 10 {
			score += 25
		}
		if pickNutrient(nutriments, "salt_100g") > 1.5 {
			score += 20
		}
		if pickNutrient(nutriments, "saturated-fat_100g", "saturated_fat_100g") > 5 {
			score += 20
		}
	}
	if hasCriticalCondition(active) {
		score += 10
	}

	return clamp(score, aggregateScoreMin, aggregateScoreMax)
}

// pickNutrient tries each key in order; upstream feeds disagree on dash
// versus underscore spellings.
func pickNutrient(n map[string]float64, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := n[k]; ok {
			return v
		}
	}
	return 0
}

// OverallRisk derives the product tier from the canonical score mapping,
// then applies the forced escalations: any high-risk ingredient, a
// critical condition with score above 60, or a score above 80 forces
// high; any medium-risk ingredient or a score above 40 forces at least
// medium.
func OverallRisk(score int, summary models.AnalysisSummary, active []models.Condition) models.RiskTier {
	tier := TierForScore(score)
	if summary.HighRisk > 0 || (hasCriticalCondition(active) && score > 60) || score > 80 || tier == models.RiskHigh {
		return models.RiskHigh
	}
	if summary.MediumRisk > 0 || score > 40 || tier == models.RiskMedium {
		return models.RiskMedium
	}
	return models.RiskLow
}

// MedicalRisks summarizes, per active condition, every ingredient whose
// recorded reasons reference that condition.
func MedicalRisks(assessments []models.IngredientAssessment, active []models.Condition) []models.MedicalRisk {
	return collectMedicalRisks(assessments, active, func(a models.IngredientAssessment, cond *models.Condition) bool {
		for _, reason := range a.Reasons {
			if strings.Contains(reason, cond.Name) {
				return true
			}
		}
		return false
	})
}

// MedicalRisksByTrigger is the variant used when assessments came from the
// external scorer: their reasons are templated and never name conditions,
// so matching falls back to trigger containment.
func MedicalRisksByTrigger(assessments []models.IngredientAssessment, active []models.Condition) []models.MedicalRisk {
	return collectMedicalRisks(assessments, active, func(a models.IngredientAssessment, cond *models.Condition) bool {
		name := strings.ToLower(a.Name)
		for _, trigger := range cond.Triggers {
			if strings.Contains(name, strings.ToLower(trigger)) {
				return true
			}
		}
		return false
	})
}

func collectMedicalRisks(assessments []models.IngredientAssessment, active []models.Condition, matches func(models.IngredientAssessment, *models.Condition) bool) []models.MedicalRisk {
	risks := []models.MedicalRisk{}
	for i := range active {
		cond := &active[i]
		var matched []models.IngredientRisk
		worst := models.RiskLow
		for _, a := range assessments {
			if !matches(a, cond) {
				continue
			}
			matched = append(matched, models.IngredientRisk{
				Ingredient: a.Name,
				Risk:       float64(a.Score) / 100,
				Reason:     cond.Advice,
			})
			if a.Risk == models.RiskHigh {
				worst = models.RiskHigh
			} else if a.Risk == models.RiskMedium && worst != models.RiskHigh {
				worst = models.RiskMedium
			}
		}
		if len(matched) > 0 {
			risks = append(risks, models.MedicalRisk{
				Disease:     cond.Name,
				Icon:        cond.Icon,
				Severity:    worst,
				DisplayName: cond.Name,
				Risks:       matched,
				Advice:      cond.Advice,
			})
		}
	}
	return risks
}

// Insights builds the templated takeaway messages for an analysis.
func Insights(overall models.RiskTier, summary models.AnalysisSummary, score int) []string {
	var insights []string
	switch overall {
	case models.RiskHigh:
		insights = append(insights,
			"AVOID - High risk detected for your health conditions",
			fmt.Sprintf("Contains %d dangerous ingredients", summary.HighRisk),
			"Strongly consider healthier alternatives",
		)
	case models.RiskMedium:
		insights = append(insights,
			"MODERATE RISK - Consume with caution",
			fmt.Sprintf("Contains %d concerning ingredients", summary.MediumRisk),
			"Limit portion size and frequency",
		)
	default:
		insights = append(insights,
			"SAFE - Good choice for your conditions",
			fmt.Sprintf("%d safe ingredients analyzed", summary.LowRisk),
			"Maintains health goals",
		)
	}

	if score > 70 {
		insights = append(insights, "High risk score suggests caution needed")
	} else if score > 50 {
		insights = append(insights, "Moderate risk - check alternatives for better options")
	}
	return insights
}

// ImprovementTips returns the per-tier portion/substitution advice shown
// alongside the recommendation.
func ImprovementTips(overall models.RiskTier) []string {
	switch overall {
	case models.RiskHigh:
		return []string{
			"Avoid this product completely",
			"Look for low-sugar, low-sodium alternatives",
			"Consider whole food alternatives",
		}
	case models.RiskMedium:
		return []string{
			"Limit portion size",
			"Consume occasionally, not daily",
			"Drink water with your meal",
		}
	default:
		return []string{
			"Good choice for your health goals",
			"Maintain balanced portions",
			"Continue monitoring your health",
		}
	}
}

// RecommendationStatus maps the overall tier to the action keyword the
// transport layer exposes.
func RecommendationStatus(overall models.RiskTier) string {
	switch overall {
	case models.RiskHigh:
		return "avoid"
	case models.RiskMedium:
		return "moderate"
	default:
		return "safe"
	}
}

// AnalyzeProduct runs the full rule-based pipeline for one product:
// tokenize the label, classify every ingredient, aggregate, summarize.
func AnalyzeProduct(product *models.Product, active []models.Condition) *models.ProductAnalysis {
	analysis := &models.ProductAnalysis{
		OverallRisk: models.RiskLow,
		RiskScore:   scoreEmptyProduct,
		Ingredients: []models.IngredientAssessment{},
	}

	for _, token := range utils.ExtractIngredients(product.Ingredients) {
		assessment := ClassifyIngredient(token, active)
		analysis.Ingredients = append(analysis.Ingredients, assessment)
		switch assessment.Risk {
		case models.RiskHigh:
			analysis.Summary.HighRisk++
		case models.RiskMedium:
			analysis.Summary.MediumRisk++
		default:
			analysis.Summary.LowRisk++
		}
	}
	analysis.Summary.Total = len(analysis.Ingredients)

	analysis.RiskScore = AggregateRiskScore(analysis.Ingredients, product.Nutriments, active)
	analysis.OverallRisk = OverallRisk(analysis.RiskScore, analysis.Summary, active)
	analysis.MedicalRisks = MedicalRisks(analysis.Ingredients, active)
	analysis.Insights = Insights(analysis.OverallRisk, analysis.Summary, analysis.RiskScore)
	return analysis
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
