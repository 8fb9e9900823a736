package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anurudhk499/SafeBite/services"
)

// HealthController exposes the service banner and status endpoints.
type HealthController struct {
	products *services.ProductService
}

func NewHealthController(products *services.ProductService) *HealthController {
	return &HealthController{products: products}
}

// Root handles GET / with a short service banner.
func (hc *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "SafeBite API",
		"status":  "running",
		"version": "2.0",
	})
}

// Health handles GET /api/health.
func (hc *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"cachedProducts": hc.products.CacheSize(),
		"conditions":     len(services.Conditions()),
	})
}

// AIStats handles GET /api/ai-stats with the recommendation engine
// metadata the client shows on its about screen.
func (hc *HealthController) AIStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"version":        "2.0",
			"conditions":     len(services.Conditions()),
			"cachedProducts": hc.products.CacheSize(),
			"engine":         "hybrid rule-based with optional ML scoring",
		},
	})
}
