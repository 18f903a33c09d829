package platform

import (
	"strings"
	"unicode/utf8"

	"github.com/abdulachik/viralkit/internal/models"
)

// FormatPost renders an asset the way it would be published.
// Reddit posts never carry a hashtag line.
func FormatPost(asset models.MarketingAsset) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(asset.Caption))

	if asset.Platform != models.PlatformReddit {
		if tags := FormatHashtags(asset.Hashtags); tags != "" {
			if b.Len() > 0 {
				b.WriteString("\n\n")
			}
			b.WriteString(tags)
		}
	}

	return b.String()
}

// FormatHashtags joins tags with a leading '#', skipping blanks and duplicates.
func FormatHashtags(tags []string) string {
	seen := make(map[string]bool, len(tags))
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(tag), "#"))
		tag = strings.ReplaceAll(tag, " ", "")
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		parts = append(parts, "#"+tag)
	}
	return strings.Join(parts, " ")
}

// FitsInLimit checks if the formatted post fits within the limit.
func FitsInLimit(formatted string, limit int) bool {
	return utf8.RuneCountInString(formatted) <= limit
}

// TruncateCaption shortens a caption to at most limit runes, ending in "...".
func TruncateCaption(caption string, limit int) string {
	if FitsInLimit(caption, limit) {
		return caption
	}
	if limit <= 3 {
		return string([]rune(caption)[:limit])
	}

	available := limit - 3
	truncated := string([]rune(caption)[:available])

	// Only use word boundary if not too far back
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > len(truncated)/2 {
		truncated = truncated[:lastSpace]
	}

	return strings.TrimRight(truncated, " .,;:!?") + "..."
}

// Render formats an asset and trims the caption so the whole post fits the platform.
func Render(asset models.MarketingAsset) string {
	spec := Lookup(string(asset.Platform))
	formatted := FormatPost(asset)
	if FitsInLimit(formatted, spec.CharLimit) {
		return formatted
	}

	overhead := utf8.RuneCountInString(formatted) - utf8.RuneCountInString(strings.TrimSpace(asset.Caption))
	budget := spec.CharLimit - overhead
	if budget < 0 {
		budget = 0
	}
	asset.Caption = TruncateCaption(strings.TrimSpace(asset.Caption), budget)
	return FormatPost(asset)
}
