package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/anurudhk499/SafeBite/config"
	"github.com/anurudhk499/SafeBite/controllers"
	"github.com/anurudhk499/SafeBite/middlewares"
	"github.com/anurudhk499/SafeBite/services"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORS())

	cache := services.NewProductCache(config.DB)
	products := services.NewProductService(
		services.NewOpenFoodFactsService(),
		services.NewMLScorerService(),
		cache,
	)

	analyze := controllers.NewAnalyzeController(products)
	health := controllers.NewHealthController(products)

	r.GET("/", health.Root)

	api := r.Group("/api")
	{
		api.GET("/health", health.Health)
		api.GET("/ai-stats", health.AIStats)

		api.GET("/diseases", controllers.ListConditions)
		api.GET("/all-diseases", controllers.ListAllConditions)
		api.POST("/match-disease", controllers.MatchConditionHandler)

		api.POST("/analyze", analyze.Analyze)
		api.POST("/scan-barcode", analyze.ScanBarcode)
		api.GET("/search-products", analyze.SearchProducts)
	}

	return r
}
