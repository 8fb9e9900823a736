package services

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/anurudhk499/SafeBite/models"
)

// ProductService ties the product source, the optional ML scorer and the
// cache into the analysis pipeline the transport layer calls.
type ProductService struct {
	source *OpenFoodFactsService
	ml     *MLScorerService
	cache  *ProductCache
}

func NewProductService(source *OpenFoodFactsService, ml *MLScorerService, cache *ProductCache) *ProductService {
	return &ProductService{source: source, ml: ml, cache: cache}
}

// AnalysisResult bundles everything one analysis request produced.
type AnalysisResult struct {
	Product        *models.Product
	Analysis       *models.ProductAnalysis
	Alternatives   []models.Alternative
	MLAlternatives []models.Alternative
	MLUsed         bool
}

// FetchProduct returns the cached or freshly fetched product record, or a
// fallback record when the upstream is unavailable. It never fails: an
// unreachable product database degrades to "ingredients not specified".
func (s *ProductService) FetchProduct(ctx context.Context, name, barcode string) *models.Product {
	key := CacheKey(name, barcode)
	if p, ok := s.cache.Get(key); ok {
		return p
	}

	p, err := s.source.FetchProduct(ctx, name, barcode)
	if err != nil || p == nil {
		if err != nil {
			log.Printf("product lookup failed for %q: %v", key, err)
		}
		return FallbackProduct(name)
	}
	s.cache.Put(key, p)
	return p
}

// LookupBarcode is the strict variant used by the scan endpoint: a miss
// is reported instead of substituting a fallback record.
func (s *ProductService) LookupBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	if p, ok := s.cache.Get(barcode); ok {
		return p, nil
	}
	p, err := s.source.FetchProduct(ctx, "", barcode)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("product not found for barcode %s", barcode)
	}
	s.cache.Put(barcode, p)
	return p, nil
}

// SearchProducts serves the search box: cached products first, topped up
// from the upstream. Upstream failure degrades to whatever the cache had.
func (s *ProductService) SearchProducts(ctx context.Context, query string, limit int) []models.ProductHit {
	hits := s.cache.Search(query, limit)
	if len(hits) >= limit {
		return hits[:limit]
	}

	remote, err := s.source.SearchProducts(ctx, query, limit)
	if err != nil {
		log.Printf("product search failed for %q: %v", query, err)
		return hits
	}
	seen := make(map[string]bool, len(hits))
	for _, h := range hits {
		seen[h.Name] = true
	}
	for _, h := range remote {
		if len(hits) >= limit {
			break
		}
		if !seen[h.Name] {
			seen[h.Name] = true
			hits = append(hits, h)
		}
	}
	return hits
}

// CacheSize exposes the cache population for the health endpoints.
func (s *ProductService) CacheSize() int {
	return s.cache.Len()
}

// Analyze runs one full analysis request: fetch the product, try the
// external scorer, fall back to the rule-based engine, then attach
// alternatives.
func (s *ProductService) Analyze(ctx context.Context, name, barcode string, active []models.Condition) *AnalysisResult {
	product := s.FetchProduct(ctx, name, barcode)

	var analysis *models.ProductAnalysis
	var mlAlts []models.Alternative
	mlUsed := false

	if s.ml.Enabled() {
		ml, err := s.ml.Analyze(ctx, product, conditionNames(active))
		if err != nil {
			log.Printf("ml scorer unavailable, using rule-based analysis: %v", err)
		} else {
			analysis = analysisFromML(ml, active)
			mlAlts = ReshapeExternalAlternatives(ml.Alternatives, active)
			mlUsed = true
		}
	}
	if analysis == nil {
		analysis = AnalyzeProduct(product, active)
	}

	alternatives := mlAlts
	if len(alternatives) == 0 {
		alternatives = RecommendAlternatives(product.Name, active)
	}

	return &AnalysisResult{
		Product:        product,
		Analysis:       analysis,
		Alternatives:   alternatives,
		MLAlternatives: mlAlts,
		MLUsed:         mlUsed,
	}
}

// analysisFromML rebuilds a ProductAnalysis from the external scorer's
// output. The external risk_level label is advisory only: both the tier
// and the forced escalations are recomputed locally from the numeric
// score and the per-ingredient tiers.
func analysisFromML(ml *MLAnalysis, active []models.Condition) *models.ProductAnalysis {
	analysis := &models.ProductAnalysis{
		Ingredients: make([]models.IngredientAssessment, 0, len(ml.IngredientAnalysis)),
	}

	for _, ing := range ml.IngredientAnalysis {
		name := ing.Name
		if name == "" {
			name = "Unknown ingredient"
		}
		var assessment models.IngredientAssessment
		switch ing.Risk {
		case "high":
			assessment = models.IngredientAssessment{Name: name, Risk: models.RiskHigh, Score: scoreHighRisk, Reasons: []string{"High risk ingredient detected"}}
			analysis.Summary.HighRisk++
		case "medium":
			assessment = models.IngredientAssessment{Name: name, Risk: models.RiskMedium, Score: scoreMediumRisk, Reasons: []string{"Moderate risk ingredient"}}
			analysis.Summary.MediumRisk++
		default:
			assessment = models.IngredientAssessment{Name: name, Risk: models.RiskLow, Score: scoreLowRisk, Reasons: []string{"Generally safe"}}
			analysis.Summary.LowRisk++
		}
		analysis.Ingredients = append(analysis.Ingredients, assessment)
	}
	analysis.Summary.Total = len(analysis.Ingredients)

	score := clamp(int(math.Round(ml.RiskScore)), 0, aggregateScoreMax)
	analysis.RiskScore = score
	analysis.OverallRisk = OverallRisk(score, analysis.Summary, active)
	analysis.MedicalRisks = MedicalRisksByTrigger(analysis.Ingredients, active)
	analysis.Insights = append([]string{
		"AI model analysis complete",
		fmt.Sprintf("Risk Score: %d%%", score),
	}, Insights(analysis.OverallRisk, analysis.Summary, score)...)
	return analysis
}

func conditionNames(active []models.Condition) []string {
	names := make([]string, 0, len(active))
	for i := range active {
		names = append(names, active[i].Name)
	}
	return names
}
