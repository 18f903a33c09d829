package platform

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/abdulachik/viralkit/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		limit int
	}{
		{"twitter", 280},
		{"pinterest", 500},
		{"instagram", 2200},
		{"linkedin", 3000},
		{"reddit", 40000},
		{"myspace", 280},
		{"", 280},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.limit, Lookup(tt.name).CharLimit)
		})
	}

	t.Run("unknown platform uses twitter conventions", func(t *testing.T) {
		assert.Equal(t, Lookup("twitter"), Lookup("tiktok"))
	})
}

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, len(models.Platforms))
	for i, spec := range all {
		assert.Equal(t, models.Platforms[i], spec.Platform)
		assert.NotEmpty(t, spec.HashtagStrategy)
		assert.NotEmpty(t, spec.BestPractices)
	}
}

func TestFormatHashtags(t *testing.T) {
	t.Run("adds hash prefix", func(t *testing.T) {
		assert.Equal(t, "#growth #tips", FormatHashtags([]string{"growth", "tips"}))
	})

	t.Run("keeps single prefix", func(t *testing.T) {
		assert.Equal(t, "#growth", FormatHashtags([]string{"#growth"}))
	})

	t.Run("skips blanks and duplicates", func(t *testing.T) {
		assert.Equal(t, "#Growth #side_hustle", FormatHashtags([]string{"Growth", " ", "growth", "side_hustle"}))
	})

	t.Run("removes inner spaces", func(t *testing.T) {
		assert.Equal(t, "#digitalproducts", FormatHashtags([]string{"digital products"}))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", FormatHashtags(nil))
	})
}

func TestFormatPost(t *testing.T) {
	t.Run("caption and hashtags", func(t *testing.T) {
		asset := models.MarketingAsset{
			Platform: models.PlatformInstagram,
			Caption:  "Ship faster.",
			Hashtags: []string{"productivity", "tools"},
		}
		assert.Equal(t, "Ship faster.\n\n#productivity #tools", FormatPost(asset))
	})

	t.Run("reddit has no hashtags", func(t *testing.T) {
		asset := models.MarketingAsset{
			Platform: models.PlatformReddit,
			Caption:  "Here is what worked for me.",
			Hashtags: []string{"growth"},
		}
		assert.Equal(t, "Here is what worked for me.", FormatPost(asset))
	})

	t.Run("no caption", func(t *testing.T) {
		asset := models.MarketingAsset{Platform: models.PlatformTwitter, Hashtags: []string{"a"}}
		assert.Equal(t, "#a", FormatPost(asset))
	})
}

func TestTruncateCaption(t *testing.T) {
	t.Run("short caption unchanged", func(t *testing.T) {
		assert.Equal(t, "Short.", TruncateCaption("Short.", 100))
	})

	t.Run("long caption truncated", func(t *testing.T) {
		caption := "This is a very long caption that needs to be truncated because it exceeds the limit."
		result := TruncateCaption(caption, 40)

		assert.LessOrEqual(t, utf8.RuneCountInString(result), 40)
		assert.True(t, strings.HasSuffix(result, "..."))
	})

	t.Run("truncates at word boundary", func(t *testing.T) {
		result := TruncateCaption("Word1 word2 word3 word4 word5 word6 word7 word8", 30)
		assert.Equal(t, "Word1 word2 word3 word4...", result)
	})

	t.Run("tiny limit", func(t *testing.T) {
		assert.Equal(t, "ab", TruncateCaption("abcdef", 2))
	})
}

func TestFitsInLimit(t *testing.T) {
	tests := []struct {
		text  string
		limit int
		fits  bool
	}{
		{"short", 280, true},
		{strings.Repeat("a", 280), 280, true},
		{strings.Repeat("a", 281), 280, false},
		{"日本語", 3, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.fits, FitsInLimit(tt.text, tt.limit))
	}
}

func TestRender(t *testing.T) {
	t.Run("fits unchanged", func(t *testing.T) {
		asset := models.MarketingAsset{Platform: models.PlatformTwitter, Caption: "Hi", Hashtags: []string{"x"}}
		assert.Equal(t, "Hi\n\n#x", Render(asset))
	})

	t.Run("trims caption to twitter limit", func(t *testing.T) {
		asset := models.MarketingAsset{
			Platform: models.PlatformTwitter,
			Caption:  strings.Repeat("word ", 100),
			Hashtags: []string{"growth", "tips"},
		}
		out := Render(asset)

		assert.True(t, FitsInLimit(out, 280))
		assert.True(t, strings.HasSuffix(out, "#growth #tips"))
		assert.Contains(t, out, "...")
	})
}
