package platform

import (
	"github.com/abdulachik/viralkit/internal/models"
)

// Spec holds the posting conventions of a platform.
type Spec struct {
	Platform        models.Platform
	CharLimit       int
	HashtagStrategy string
	BestPractices   string
}

var specs = map[models.Platform]Spec{
	models.PlatformTwitter: {
		Platform:        models.PlatformTwitter,
		CharLimit:       280,
		HashtagStrategy: "Use 1-3 hashtags max",
		BestPractices:   "Short, punchy, conversational. Use line breaks. Ask questions.",
	},
	models.PlatformPinterest: {
		Platform:        models.PlatformPinterest,
		CharLimit:       500,
		HashtagStrategy: "Use 5-10 specific hashtags",
		BestPractices:   "Descriptive, keyword-rich. Focus on benefits and results.",
	},
	models.PlatformInstagram: {
		Platform:        models.PlatformInstagram,
		CharLimit:       2200,
		HashtagStrategy: "Use 10-20 hashtags (mix of popular and niche)",
		BestPractices:   "Story-driven, authentic, use emojis. First line is critical.",
	},
	models.PlatformLinkedIn: {
		Platform:        models.PlatformLinkedIn,
		CharLimit:       3000,
		HashtagStrategy: "Use 3-5 professional hashtags",
		BestPractices:   "Professional tone, value-driven, data/insights. Use paragraphs.",
	},
	models.PlatformReddit: {
		Platform:        models.PlatformReddit,
		CharLimit:       40000,
		HashtagStrategy: "No hashtags, focus on value",
		BestPractices:   "Genuine, helpful, avoid sales pitch. Provide value first.",
	},
}

// Lookup returns the spec for a platform name.
// Unknown names fall back to the twitter conventions.
func Lookup(name string) Spec {
	if spec, ok := specs[models.Platform(name)]; ok {
		return spec
	}
	return specs[models.PlatformTwitter]
}

// All returns the specs of every supported platform in generation order.
func All() []Spec {
	out := make([]Spec, 0, len(models.Platforms))
	for _, p := range models.Platforms {
		out = append(out, specs[p])
	}
	return out
}
