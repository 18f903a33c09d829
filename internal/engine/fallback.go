package engine

import (
	"fmt"

	"github.com/abdulachik/viralkit/internal/models"
)

// FallbackInsights returns generic research used when the model cannot be reached
// or answers with something unparsable.
func FallbackInsights() models.MarketInsights {
	return models.MarketInsights{
		NicheTrends: []string{
			"Authenticity and transparency",
			"Short-form video content",
			"User-generated content",
			"Educational value",
			"Community building",
		},
		CompetitorAnalysis: []string{
			"Focus on storytelling over features",
			"Heavy use of visual content",
			"Consistent posting schedule",
		},
		TargetAudience: models.TargetAudience{
			Demographics: "Digital-savvy professionals aged 25-45",
			PainPoints: []string{
				"Lack of time",
				"Information overload",
				"Need for practical solutions",
				"Difficulty standing out",
			},
			Desires: []string{
				"Efficiency and productivity",
				"Professional growth",
				"Work-life balance",
				"Recognition and success",
			},
		},
		ViralElements: []string{
			"Strong hook in first 3 seconds",
			"Emotional resonance",
			"Actionable takeaways",
			"Visual appeal",
			"Relatable scenarios",
		},
		KeywordClusters: []string{
			"productivity",
			"growth",
			"success",
			"tips",
			"strategy",
			"results",
			"transform",
			"breakthrough",
		},
	}
}

// FallbackAssets returns n template variants for a platform.
func FallbackAssets(platform models.Platform, n int, productName, landingURL string) []models.MarketingAsset {
	assets := make([]models.MarketingAsset, 0, max(n, 0))
	for i := 0; i < n; i++ {
		assets = append(assets, models.MarketingAsset{
			Platform:        platform,
			VariantIndex:    i + 1,
			Caption:         fmt.Sprintf("Discover %s - your solution to [key benefit]. %s", productName, landingURL),
			Hashtags:        []string{"productivity", "growth", "success", "tips", "strategy"},
			ImagePrompt:     fmt.Sprintf("Professional, modern marketing image featuring %s, vibrant colors, clean design, tech-focused aesthetic, high quality, eye-catching composition", productName),
			CTA:             "Learn more",
			BestPostingTime: "Weekday mornings 9-11AM",
			EngagementScore: 65,
		})
	}
	return assets
}
