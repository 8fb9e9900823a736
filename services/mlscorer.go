package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/anurudhk499/SafeBite/models"
)

// MLScorerService calls the optional external inference service. It is an
// optimization, never a dependency: every failure path falls back to the
// rule-based engine.
type MLScorerService struct {
	baseURL string
	client  *http.Client
}

func NewMLScorerService() *MLScorerService {
	return &MLScorerService{
		baseURL: os.Getenv("ML_SERVICE_URL"),
		client:  &http.Client{Timeout: 8 * time.Second},
	}
}

// Enabled reports whether an inference endpoint is configured at all.
func (s *MLScorerService) Enabled() bool {
	return s.baseURL != ""
}

// MLAnalysis is the external scorer's response. Every field is optional;
// absent or malformed values default to their zero value and the caller
// substitutes the local fallback.
type MLAnalysis struct {
	RiskScore          float64            `json:"risk_score"`
	RiskLevel          string             `json:"risk_level"`
	IngredientAnalysis []MLIngredientRisk `json:"ingredient_analysis"`
	Alternatives       []MLAlternative    `json:"alternatives"`
}

type MLIngredientRisk struct {
	Name string `json:"name"`
	Risk string `json:"risk"`
}

type MLAlternative struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	MatchScore float64 `json:"match_score"`
	Reason     string  `json:"reason"`
}

// Analyze posts the product and the active condition names to the
// inference service.
func (s *MLScorerService) Analyze(ctx context.Context, product *models.Product, conditionNames []string) (*MLAnalysis, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("ml service not configured")
	}

	payload := map[string]any{
		"product": map[string]any{
			"name":             product.Name,
			"product_name":     product.Name,
			"ingredients":      product.Ingredients,
			"ingredients_text": product.Ingredients,
			"nutriments":       product.Nutriments,
		},
		"userConditions": conditionNames,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ml payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/analyze", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create ml request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ml request error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read ml response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ml api error (%d): %s", resp.StatusCode, string(body))
	}

	var out MLAnalysis
	if err := json.Unmarshal(body, &out); err != nil {
		preview := string(body)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return nil, fmt.Errorf("decode ml response error: %w | body: %s", err, preview)
	}
	return &out, nil
}
