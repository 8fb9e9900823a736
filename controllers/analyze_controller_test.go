package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/anurudhk499/SafeBite/services"
)

func analyzeRouter(t *testing.T, off http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if off != nil {
		srv := httptest.NewServer(off)
		t.Cleanup(srv.Close)
		t.Setenv("OFF_BASE_URL", srv.URL)
	} else {
		t.Setenv("OFF_BASE_URL", "http://127.0.0.1:1") // unreachable
	}
	t.Setenv("ML_SERVICE_URL", "")

	products := services.NewProductService(
		services.NewOpenFoodFactsService(),
		services.NewMLScorerService(),
		services.NewProductCache(nil),
	)
	ac := NewAnalyzeController(products)
	hc := NewHealthController(products)

	r := gin.New()
	r.POST("/api/analyze", ac.Analyze)
	r.POST("/api/scan-barcode", ac.ScanBarcode)
	r.GET("/api/search-products", ac.SearchProducts)
	r.GET("/api/health", hc.Health)
	r.GET("/api/ai-stats", hc.AIStats)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeRejectsEmptyRequest(t *testing.T) {
	r := analyzeRouter(t, nil)
	w := postJSON(r, "/api/analyze", `{"userConditions":[{"name":"Diabetes"}]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAnalyzeEndToEnd(t *testing.T) {
	r := analyzeRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"products":[{
			"product_name":"Sweet Salted Crackers",
			"ingredients_text":"sugar, salt, wheat flour",
			"nutriments":{"sugars_100g":28,"salt_100g":2.1}
		}]}`))
	})

	w := postJSON(r, "/api/analyze", `{
		"productName": "Sweet Salted Crackers",
		"userConditions": [{"name":"Diabetes"},{"name":"Hypertension"}]
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success  bool `json:"success"`
		Analysis struct {
			OverallRisk string `json:"overallRisk"`
			RiskScore   int    `json:"riskScore"`
		} `json:"analysis"`
		Recommendation struct {
			Status       string           `json:"status"`
			Alternatives []map[string]any `json:"alternatives"`
		} `json:"recommendation"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Fatal("success = false")
	}
	if resp.Analysis.OverallRisk != "high" || resp.Analysis.RiskScore < 70 {
		t.Fatalf("analysis = %+v, want high with score >= 70", resp.Analysis)
	}
	if resp.Recommendation.Status != "avoid" {
		t.Fatalf("recommendation status = %q, want avoid", resp.Recommendation.Status)
	}
	if len(resp.Recommendation.Alternatives) == 0 {
		t.Fatal("no alternatives returned")
	}
}

func TestAnalyzeUnknownConditionsIgnored(t *testing.T) {
	r := analyzeRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"products":[{"product_name":"Water","ingredients_text":"water"}]}`))
	})
	w := postJSON(r, "/api/analyze", `{
		"productName": "Water",
		"userConditions": [{"name":"Not A Real Condition"}]
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"success":true`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAnalyzeDegradesOnUpstreamFailure(t *testing.T) {
	r := analyzeRouter(t, nil)
	w := postJSON(r, "/api/analyze", `{"productName":"ghost snack"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with fallback product", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Ingredients not specified") {
		t.Fatalf("fallback record missing: %s", w.Body.String())
	}
}

func TestScanBarcode(t *testing.T) {
	r := analyzeRouter(t, func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.URL.Path, "12345") {
			w.Write([]byte(`{"product":{"product_name":"Choco Bar","ingredients_text":"sugar"}}`))
			return
		}
		w.Write([]byte(`{}`))
	})

	w := postJSON(r, "/api/scan-barcode", `{"barcode":"12345"}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Choco Bar") {
		t.Fatalf("hit failed: %d %s", w.Code, w.Body.String())
	}

	w = postJSON(r, "/api/scan-barcode", `{"barcode":"99999"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("miss status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Product not found in database") {
		t.Fatalf("miss body: %s", w.Body.String())
	}

	w = postJSON(r, "/api/scan-barcode", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing barcode status = %d, want 400", w.Code)
	}
}

func TestSearchProductsEndpoint(t *testing.T) {
	r := analyzeRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"products":[{"product_name":"Oat Milk","brands":"OatCo"}]}`))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search-products?q=oat", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Oat Milk") {
		t.Fatalf("search failed: %d %s", w.Code, w.Body.String())
	}

	// Queries under two characters short-circuit to an empty list.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search-products?q=a", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"products":[]`) {
		t.Fatalf("short query: %d %s", w.Code, w.Body.String())
	}
}

func TestHealthEndpoints(t *testing.T) {
	r := analyzeRouter(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "healthy") {
		t.Fatalf("health: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ai-stats", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"success":true`) {
		t.Fatalf("ai-stats: %d %s", w.Code, w.Body.String())
	}
}
