package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anurudhk499/SafeBite/services"
)

// How many conditions the initial picker shows before "show more".
const initialConditionCount = 4

// GET /api/diseases
func ListConditions(c *gin.Context) {
	all := services.ConditionSummaries()
	limited := all
	if len(limited) > initialConditionCount {
		limited = limited[:initialConditionCount]
	}
	c.JSON(http.StatusOK, gin.H{
		"diseases": limited,
		"hasMore":  len(all) > initialConditionCount,
		"total":    len(all),
	})
}

// GET /api/all-diseases
func ListAllConditions(c *gin.Context) {
	c.JSON(http.StatusOK, services.ConditionSummaries())
}

// POST /api/match-disease
//
// Both "no input" and "no match" are structured results, not errors: the
// client is expected to fall back to the picker list.
func MatchConditionHandler(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	if req.Query == "" {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Please enter a health condition",
		})
		return
	}

	cond, ok := services.MatchCondition(req.Query)
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"success":    false,
			"message":    fmt.Sprintf("Could not match %q. Please select from the list below.", req.Query),
			"suggestion": "Try: Diabetes, Hypertension, Heart Disease, etc.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"disease": services.SummarizeCondition(cond),
		"message": fmt.Sprintf("Matched %q to %q", req.Query, cond.Name),
	})
}
