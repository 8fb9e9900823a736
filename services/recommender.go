package services

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"

	"github.com/anurudhk499/SafeBite/models"
)

const (
	localMatchScoreBase = 70
	localMatchScoreMin  = 50
	localMatchScoreMax  = 95
	maxAlternatives     = 3

	externalMatchScoreMin = 60
	externalMatchScoreMax = 95
	maxExternalAlts       = 5
)

// candidateSeed is a predefined alternative plus the tag string the
// scorer tests condition adjustments against. Tags are descriptive token
// bags ("protein fiber whole"), not display text.
type candidateSeed struct {
	alt models.Alternative
	tag string
}

// categoryGroups maps product-name keywords to their substitute
// candidates. Groups are checked in order; the first matching group wins.
var categoryGroups = []struct {
	keywords []string
	seeds    []candidateSeed
}{
	{
		keywords: []string{"chips", "crisp"},
		seeds: []candidateSeed{
			{
				alt: models.Alternative{
					Name:             "Baked Veggie Chips",
					Brand:            "Healthy Snack",
					Image:            "https://images.unsplash.com/photo-1541592106381-b31e9677c0e5?w=400",
					Benefits:         []string{"Low fat", "High fiber", "No trans fats"},
					Reason:           "Baked instead of fried, lower fat content",
					Category:         "Snacks",
					NutritionalValue: "High in fiber, low in saturated fat",
				},
				tag: "baked fiber snack",
			},
			{
				alt: models.Alternative{
					Name:             "Roasted Chickpeas",
					Brand:            "Protein Snack",
					Image:            "https://images.unsplash.com/photo-1546069901-d5bfd2cbfb1f?w=400",
					Benefits:         []string{"High protein", "High fiber", "Low glycemic"},
					Reason:           "High protein alternative with fiber",
					Category:         "Snacks",
					NutritionalValue: "Rich in protein and fiber",
				},
				tag: "protein fiber whole",
			},
		},
	},
	{
		keywords: []string{"soda", "cola", "soft drink"},
		seeds: []candidateSeed{
			{
				alt: models.Alternative{
					Name:             "Sparkling Water with Natural Flavors",
					Brand:            "Zero Sugar",
					Image:            "https://images.unsplash.com/photo-1536746803623-cef87080bfc9?w=400",
					Benefits:         []string{"Zero sugar", "No artificial sweeteners", "Hydrating"},
					Reason:           "Natural hydration without added sugars",
					Category:         "Beverages",
					NutritionalValue: "Zero calories, no sugar",
				},
				tag: "natural unsweetened drink",
			},
			{
				alt: models.Alternative{
					Name:             "Herbal Infused Water",
					Brand:            "Natural Refreshment",
					Image:            "https://images.unsplash.com/photo-1547592180-85f173990554?w=400",
					Benefits:         []string{"Antioxidants", "Natural flavors", "Detoxifying"},
					Reason:           "Natural herbs provide antioxidants",
					Category:         "Beverages",
					NutritionalValue: "Rich in antioxidants",
				},
				tag: "natural herbal drink",
			},
		},
	},
	{
		keywords: []string{"chocolate", "candy", "sweet"},
		seeds: []candidateSeed{
			{
				alt: models.Alternative{
					Name:             "Dark Chocolate (70%+ Cocoa)",
					Brand:            "Premium Quality",
					Image:            "https://images.unsplash.com/photo-1511381939415-e44015466834?w=400",
					Benefits:         []string{"Antioxidants", "Lower sugar", "Heart healthy"},
					Reason:           "Higher cocoa content, less sugar, more antioxidants",
					Category:         "Sweets",
					NutritionalValue: "Rich in flavonoids, lower sugar",
				},
				tag: "dark cocoa antioxidant",
			},
			{
				alt: models.Alternative{
					Name:             "Date-Based Energy Balls",
					Brand:            "Natural Sweet",
					Image:            "https://images.unsplash.com/photo-1563729784474-d77dbb933a9e?w=400",
					Benefits:         []string{"Natural sugars", "Fiber", "No added sugar"},
					Reason:           "Natural sweetness from dates, no refined sugar",
					Category:         "Sweets",
					NutritionalValue: "Natural sugars with fiber",
				},
				tag: "natural fiber whole",
			},
		},
	},
	{
		keywords: []string{"ice cream", "frozen dessert"},
		seeds: []candidateSeed{
			{
				alt: models.Alternative{
					Name:             "Frozen Yogurt with Probiotics",
					Brand:            "Gut Healthy",
					Image:            "https://images.unsplash.com/photo-1568307977363-2f36c09c3401?w=400",
					Benefits:         []string{"Probiotics", "Lower fat", "Less sugar"},
					Reason:           "Probiotics for gut health, lower in fat and sugar",
					Category:         "Desserts",
					NutritionalValue: "Contains probiotics, lower in fat",
				},
				tag: "dairy probiotic",
			},
			{
				alt: models.Alternative{
					Name:             "Fruit Sorbet",
					Brand:            "Dairy Free",
					Image:            "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=400",
					Benefits:         []string{"Dairy free", "Natural fruit", "Lower calories"},
					Reason:           "Made from real fruit, no dairy",
					Category:         "Desserts",
					NutritionalValue: "Natural fruit sugars, dairy-free",
				},
				tag: "fruit natural",
			},
		},
	},
	{
		keywords: []string{"bread", "pasta", "white flour"},
		seeds: []candidateSeed{
			{
				alt: models.Alternative{
					Name:             "Whole Grain / Whole Wheat",
					Brand:            "High Fiber",
					Image:            "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400",
					Benefits:         []string{"High fiber", "More nutrients", "Lower glycemic index"},
					Reason:           "Whole grains retain fiber and nutrients",
					Category:         "Grains",
					NutritionalValue: "High in fiber and B vitamins",
				},
				tag: "whole fiber grains",
			},
			{
				alt: models.Alternative{
					Name:             "Quinoa or Brown Rice Pasta",
					Brand:            "Gluten Free",
					Image:            "https://images.unsplash.com/photo-1516685018646-549198525c1b?w=400",
					Benefits:         []string{"Gluten free", "High protein", "More minerals"},
					Reason:           "Gluten-free with complete protein profile",
					Category:         "Grains",
					NutritionalValue: "Complete protein, gluten-free",
				},
				tag: "glutenfree protein whole",
			},
		},
	},
	{
		keywords: []string{"fast food", "burger", "fries"},
		seeds: []candidateSeed{
			{
				alt: models.Alternative{
					Name:             "Grilled Chicken / Veggie Burger",
					Brand:            "Lean Protein",
					Image:            "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400",
					Benefits:         []string{"Lean protein", "Lower fat", "More nutrients"},
					Reason:           "Grilled instead of fried, leaner protein",
					Category:         "Fast Food",
					NutritionalValue: "Lower in saturated fat",
				},
				tag: "grilled lean protein",
			},
			{
				alt: models.Alternative{
					Name:             "Baked Sweet Potato Fries",
					Brand:            "Nutrient Dense",
					Image:            "https://images.unsplash.com/photo-1563379926898-05f4575a45d8?w=400",
					Benefits:         []string{"More vitamins", "Lower fat", "Fiber"},
					Reason:           "Baked not fried, rich in vitamin A",
					Category:         "Fast Food",
					NutritionalValue: "Rich in vitamin A and fiber",
				},
				tag: "baked fiber vegetables",
			},
		},
	},
}

// genericSeeds are the fallback suggestions when no category matched.
var genericSeeds = []candidateSeed{
	{
		alt: models.Alternative{
			Name:             "Whole Food Alternative",
			Brand:            "Minimally Processed",
			Image:            "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400",
			Benefits:         []string{"Minimally processed", "Natural ingredients", "Better nutrition"},
			Reason:           "Less processed foods generally healthier",
			Category:         "General",
			NutritionalValue: "Higher nutrient density",
		},
		tag: "whole natural",
	},
	{
		alt: models.Alternative{
			Name:             "Homemade Version",
			Brand:            "You Control Ingredients",
			Image:            "https://images.unsplash.com/photo-1481931098730-318b6f776db0?w=400",
			Benefits:         []string{"Fresh ingredients", "Customizable", "No preservatives"},
			Reason:           "Control over ingredients and cooking methods",
			Category:         "Homemade",
			NutritionalValue: "Customizable to health needs",
		},
		tag: "fresh homemade",
	},
	{
		alt: models.Alternative{
			Name:             "Similar Product with Cleaner Label",
			Brand:            "Healthier Brands",
			Image:            "https://images.unsplash.com/photo-1490818387583-1baba5e638af?w=400",
			Benefits:         []string{"Fewer additives", "Simpler ingredients", "Better sourcing"},
			Reason:           "Look for products with fewer and simpler ingredients",
			Category:         "Alternatives",
			NutritionalValue: "Fewer artificial additives",
		},
		tag: "clean natural",
	},
}

// RecommendAlternatives ranks substitute products for the given product
// name against the user's active conditions. The first matching category
// group supplies the candidates; otherwise the generic fallbacks do. The
// sort is stable so equal scores keep seed order.
func RecommendAlternatives(productName string, active []models.Condition) []models.Alternative {
	seeds := genericSeeds
	lower := strings.ToLower(productName)
	for _, group := range categoryGroups {
		if containsAny(lower, group.keywords...) {
			seeds = group.seeds
			break
		}
	}

	out := make([]models.Alternative, 0, len(seeds))
	for _, seed := range seeds {
		alt := seed.alt
		alt.MatchScore = matchScore(seed.tag, active)
		out = append(out, alt)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchScore > out[j].MatchScore })
	if len(out) > maxAlternatives {
		out = out[:maxAlternatives]
	}
	return out
}

// matchScore starts every candidate at a neutral base and moves it per
// active condition by what the candidate's tag suggests.
func matchScore(tag string, active []models.Condition) int {
	score := localMatchScoreBase
	for i := range active {
		name := strings.ToLower(active[i].Name)

		if strings.Contains(name, "diabetes") {
			if containsAny(tag, "sugar", "sweet") {
				score -= 20
			}
			if containsAny(tag, "fiber", "whole") {
				score += 15
			}
		}
		if containsAny(name, "heart", "cholesterol") {
			if containsAny(tag, "fat", "fried") {
				score -= 20
			}
			if containsAny(tag, "lean", "grilled") {
				score += 15
			}
		}
		if containsAny(name, "hypertension", "blood pressure") {
			if containsAny(tag, "salt", "sodium") {
				score -= 20
			}
			if containsAny(tag, "low sodium", "unsalted") {
				score += 15
			}
		}

		if containsAny(tag, "natural", "whole") {
			score += 10
		}
		if containsAny(tag, "processed", "artificial") {
			score -= 10
		}
	}
	return clamp(score, localMatchScoreMin, localMatchScoreMax)
}

// ReshapeExternalAlternatives turns the external scorer's ranked
// alternatives into the local shape: names deduplicated with a numeric
// suffix, scores clamped to [60,95] (defaulting to 80 minus 5 per rank
// when absent), benefits and reasons derived from the name and the active
// conditions, at most five entries.
func ReshapeExternalAlternatives(raw []MLAlternative, active []models.Condition) []models.Alternative {
	used := make(map[string]bool, len(raw))
	out := make([]models.Alternative, 0, len(raw))

	for i, alt := range raw {
		if len(out) >= maxExternalAlts {
			break
		}
		name := strings.TrimSpace(alt.Name)
		if name == "" {
			name = "Healthy Alternative"
		}
		final := name
		for n := 1; used[final]; n++ {
			final = fmt.Sprintf("%s %d", name, n)
		}
		used[final] = true

		score := int(math.Round(alt.MatchScore))
		if score == 0 {
			score = 80 - i*5
		}

		reason := strings.TrimSpace(alt.Reason)
		if reason == "" {
			reason = externalReason(final, active)
		}

		out = append(out, models.Alternative{
			Name:             final,
			Brand:            "AI Recommended",
			Image:            externalImage(final),
			Benefits:         externalBenefits(final, active),
			MatchScore:       clamp(score, externalMatchScoreMin, externalMatchScoreMax),
			Reason:           reason,
			Category:         "ML Recommendation",
			NutritionalValue: "Personalized alternative",
		})
	}
	return out
}

// externalBenefits derives up to three benefit tags from the candidate
// name plus the active conditions.
func externalBenefits(productName string, active []models.Condition) []string {
	name := strings.ToLower(productName)
	var benefits []string
	seen := make(map[string]bool)
	add := func(b string) {
		if !seen[b] {
			seen[b] = true
			benefits = append(benefits, b)
		}
	}

	if containsAny(name, "low sugar", "sugar free") {
		add("Low sugar")
	}
	if containsAny(name, "low sodium", "salt free") {
		add("Low sodium")
	}
	if containsAny(name, "low fat", "fat free") {
		add("Low fat")
	}
	if containsAny(name, "high fiber", "fiber rich") {
		add("High fiber")
	}
	if strings.Contains(name, "protein") {
		add("Good protein")
	}
	if containsAny(name, "low calorie", "calorie controlled") {
		add("Low calorie")
	}
	if strings.Contains(name, "heart") {
		add("Heart healthy")
	}
	if containsAny(name, "whole grain", "whole wheat") {
		add("Whole grains")
	}

	for i := range active {
		cond := strings.ToLower(active[i].Name)
		if strings.Contains(cond, "diabetes") {
			add("Diabetes friendly")
			if !strings.Contains(name, "sugar") {
				add("Low glycemic")
			}
		}
		if containsAny(cond, "hypertension", "blood pressure") {
			add("Blood pressure friendly")
			if !containsAny(name, "salt", "sodium") {
				add("Low sodium")
			}
		}
		if containsAny(cond, "heart", "cholesterol") {
			add("Heart healthy")
			if !strings.Contains(name, "fat") {
				add("Low saturated fat")
			}
		}
	}

	if len(benefits) == 0 {
		benefits = []string{"Healthier choice", "Better nutrition", "AI optimized"}
	}
	if len(benefits) > 3 {
		benefits = benefits[:3]
	}
	return benefits
}

func externalReason(productName string, active []models.Condition) string {
	name := strings.ToLower(productName)
	var reasons []string

	for i := range active {
		cond := strings.ToLower(active[i].Name)
		if strings.Contains(cond, "diabetes") {
			if containsAny(name, "low sugar", "sugar free") {
				reasons = append(reasons, "Low sugar for diabetes")
			} else if containsAny(name, "high fiber", "whole grain") {
				reasons = append(reasons, "High fiber for blood sugar control")
			}
		}
		if containsAny(cond, "hypertension", "blood pressure") {
			if containsAny(name, "low sodium", "salt free") {
				reasons = append(reasons, "Low sodium for blood pressure")
			}
		}
		if containsAny(cond, "heart", "cholesterol") {
			if containsAny(name, "low fat", "heart healthy") {
				reasons = append(reasons, "Low saturated fat for heart health")
			}
		}
	}

	if len(reasons) == 0 {
		switch {
		case containsAny(name, "grain", "cereal"):
			reasons = append(reasons, "Whole grains for better nutrition")
		case containsAny(name, "nut", "seed"):
			reasons = append(reasons, "Healthy fats and protein")
		case containsAny(name, "fruit", "vegetable"):
			reasons = append(reasons, "Natural vitamins and fiber")
		default:
			reasons = append(reasons, "Healthier alternative recommended by AI")
		}
	}
	return strings.Join(reasons, "; ")
}

func externalImage(productName string) string {
	name := strings.ToLower(productName)
	category := "food"
	switch {
	case containsAny(name, "beverage", "drink"):
		category = "drink"
	case containsAny(name, "grain", "cereal"):
		category = "cereal"
	case strings.Contains(name, "fruit"):
		category = "fruit"
	case strings.Contains(name, "vegetable"):
		category = "vegetable"
	case strings.Contains(name, "nut"):
		category = "nuts"
	}
	return fmt.Sprintf("https://source.unsplash.com/400x400/?%s,healthy", url.QueryEscape(category))
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
