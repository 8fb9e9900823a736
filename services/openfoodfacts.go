package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/anurudhk499/SafeBite/models"
)

// OpenFoodFactsService looks products up by barcode or free-text name.
type OpenFoodFactsService struct {
	baseURL string
	client  *http.Client
}

// NewOpenFoodFactsService initializes the client. OFF_BASE_URL overrides
// the public instance, which the tests use to point at a local stub.
func NewOpenFoodFactsService() *OpenFoodFactsService {
	base := os.Getenv("OFF_BASE_URL")
	if base == "" {
		base = "https://world.openfoodfacts.org"
	}
	return &OpenFoodFactsService{
		baseURL: base,
		client:  &http.Client{Timeout: 8 * time.Second},
	}
}

// offProduct is the subset of an Open Food Facts record the engine needs.
// Nutriments come in as raw JSON values because the upstream mixes
// numbers and strings in the same object.
type offProduct struct {
	ProductName     string         `json:"product_name"`
	Brands          string         `json:"brands"`
	IngredientsText string         `json:"ingredients_text"`
	ImageURL        string         `json:"image_url"`
	Categories      string         `json:"categories"`
	Nutriments      map[string]any `json:"nutriments"`
	Allergens       string         `json:"allergens"`
	NutritionGrades string         `json:"nutrition_grades"`
}

type offBarcodeResponse struct {
	Product *offProduct `json:"product"`
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}

// FetchProduct fetches one product record, by barcode when given,
// otherwise by name search. A nil product with nil error means the
// upstream answered but found nothing.
func (s *OpenFoodFactsService) FetchProduct(ctx context.Context, name, barcode string) (*models.Product, error) {
	if barcode != "" {
		return s.fetchByBarcode(ctx, barcode)
	}
	return s.fetchByName(ctx, name)
}

func (s *OpenFoodFactsService) fetchByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	u := fmt.Sprintf("%s/api/v0/product/%s.json", s.baseURL, url.PathEscape(barcode))
	var br offBarcodeResponse
	if err := s.getJSON(ctx, u, &br); err != nil {
		return nil, err
	}
	if br.Product == nil {
		return nil, nil
	}
	return normalizeOFFProduct(br.Product, ""), nil
}

func (s *OpenFoodFactsService) fetchByName(ctx context.Context, name string) (*models.Product, error) {
	u := fmt.Sprintf("%s/cgi/search.pl?search_terms=%s&json=1&page_size=1", s.baseURL, url.QueryEscape(name))
	var sr offSearchResponse
	if err := s.getJSON(ctx, u, &sr); err != nil {
		return nil, err
	}
	if len(sr.Products) == 0 {
		return nil, nil
	}
	return normalizeOFFProduct(&sr.Products[0], name), nil
}

// SearchProducts returns lightweight hits for the product search box.
func (s *OpenFoodFactsService) SearchProducts(ctx context.Context, query string, limit int) ([]models.ProductHit, error) {
	u := fmt.Sprintf("%s/cgi/search.pl?search_terms=%s&json=1&page_size=%d", s.baseURL, url.QueryEscape(query), limit)
	var sr offSearchResponse
	if err := s.getJSON(ctx, u, &sr); err != nil {
		return nil, err
	}

	hits := make([]models.ProductHit, 0, len(sr.Products))
	for i := range sr.Products {
		p := &sr.Products[i]
		if p.ProductName == "" {
			continue
		}
		hits = append(hits, models.ProductHit{
			Name:  p.ProductName,
			Brand: orUnknown(p.Brands),
			Image: p.ImageURL,
		})
		if len(hits) >= limit {
			break
		}
	}
	return hits, nil
}

func (s *OpenFoodFactsService) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create product request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call product API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read product response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("product API error %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse product JSON: %w", err)
	}
	return nil
}

// normalizeOFFProduct maps an upstream record to the engine's shape,
// substituting the documented defaults for every missing field.
func normalizeOFFProduct(p *offProduct, fallbackName string) *models.Product {
	name := p.ProductName
	if name == "" {
		name = fallbackName
	}
	ingredients := p.IngredientsText
	if ingredients == "" {
		ingredients = models.IngredientsNotSpecified
	}
	categories := p.Categories
	if categories == "" {
		categories = "General Food"
	}
	grades := p.NutritionGrades
	if grades == "" {
		grades = "unknown"
	}
	return &models.Product{
		Name:            name,
		Brand:           orUnknown(p.Brands),
		Ingredients:     ingredients,
		Image:           p.ImageURL,
		Categories:      categories,
		Nutriments:      numericNutriments(p.Nutriments),
		Allergens:       p.Allergens,
		NutritionGrades: grades,
	}
}

// numericNutriments keeps only the numeric entries; string-typed values
// like "nutrition-score-fr" labels are irrelevant to scoring.
func numericNutriments(raw map[string]any) map[string]float64 {
	out := make(map[string]float64, len(raw))
	for k, v := range raw {
		if f, ok := v.(float64); ok {
			out[k] = f
		}
	}
	return out
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// FallbackProduct is the record analysis degrades to when the lookup
// fails or finds nothing: no ingredients, no nutrient bonuses.
func FallbackProduct(name string) *models.Product {
	return &models.Product{
		Name:            name,
		Brand:           "Unknown",
		Ingredients:     models.IngredientsNotSpecified,
		Categories:      "General Food",
		Nutriments:      map[string]float64{},
		NutritionGrades: "unknown",
	}
}
