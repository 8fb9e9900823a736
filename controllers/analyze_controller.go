package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/anurudhk499/SafeBite/models"
	"github.com/anurudhk499/SafeBite/services"
)

// AnalyzeController serves the product analysis endpoints on top of the
// shared product service.
type AnalyzeController struct {
	products *services.ProductService
}

func NewAnalyzeController(products *services.ProductService) *AnalyzeController {
	return &AnalyzeController{products: products}
}

type analyzeRequest struct {
	ProductName    string `json:"productName"`
	Barcode        string `json:"barcode"`
	UserConditions []struct {
		Name string `json:"name"`
	} `json:"userConditions"`
}

// Analyze handles POST /api/analyze. The only hard failure is a request
// naming neither a product nor a barcode; everything downstream degrades
// to fallback data instead of erroring.
func (ac *AnalyzeController) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	req.ProductName = strings.TrimSpace(req.ProductName)
	req.Barcode = strings.TrimSpace(req.Barcode)
	if req.ProductName == "" && req.Barcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Product name or barcode required"})
		return
	}

	active := resolveConditions(req.UserConditions)
	result := ac.products.Analyze(c.Request.Context(), req.ProductName, req.Barcode, active)
	analysis := result.Analysis

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"product":  result.Product,
		"analysis": analysis,
		"recommendation": gin.H{
			"status":          services.RecommendationStatus(analysis.OverallRisk),
			"message":         strings.Join(analysis.Insights, " "),
			"alternatives":    result.Alternatives,
			"improvementTips": services.ImprovementTips(analysis.OverallRisk),
		},
		"mlAlternatives": result.MLAlternatives,
		"ai": gin.H{
			"enabled":    result.MLUsed,
			"confidence": aiConfidence(result.MLUsed),
			"trained":    result.MLUsed,
			"version":    "2.0",
		},
	})
}

type scanRequest struct {
	Barcode string `json:"barcode"`
}

// ScanBarcode handles POST /api/scan-barcode. Unlike Analyze, a barcode
// the product database does not know is reported instead of replaced
// with a fallback record.
func (ac *AnalyzeController) ScanBarcode(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Barcode) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Barcode required"})
		return
	}

	product, err := ac.products.LookupBarcode(c.Request.Context(), strings.TrimSpace(req.Barcode))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "Product not found in database"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// SearchProducts handles GET /api/search-products. Queries shorter than
// two characters return an empty list rather than an error.
func (ac *AnalyzeController) SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if len(query) < 2 {
		c.JSON(http.StatusOK, gin.H{"success": true, "products": []models.ProductHit{}})
		return
	}
	hits := ac.products.SearchProducts(c.Request.Context(), query, 10)
	if hits == nil {
		hits = []models.ProductHit{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": hits})
}

func resolveConditions(raw []struct {
	Name string `json:"name"`
}) []models.Condition {
	active := make([]models.Condition, 0, len(raw))
	for _, entry := range raw {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			continue
		}
		if cond, ok := services.ConditionByName(name); ok {
			active = append(active, *cond)
		}
	}
	return active
}

func aiConfidence(mlUsed bool) int {
	if mlUsed {
		return 85
	}
	return 70
}
