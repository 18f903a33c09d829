package models

// Platform identifies a social media destination.
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformPinterest Platform = "pinterest"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformReddit    Platform = "reddit"
)

// Platforms lists every supported platform in generation order.
var Platforms = []Platform{
	PlatformTwitter,
	PlatformPinterest,
	PlatformInstagram,
	PlatformLinkedIn,
	PlatformReddit,
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// Status is the outcome of a generation request.
type Status string

const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusFailed  Status = "failed"
)

// GenerationRequest is the input to a marketing generation run.
type GenerationRequest struct {
	ProductID           string `json:"product_id"`
	UserID              string `json:"user_id"`
	ProductName         string `json:"product_name" binding:"required"`
	Niche               string `json:"niche" binding:"required"`
	LandingURL          string `json:"landing_url" binding:"required"`
	ProductFileURL      string `json:"product_file_s3_url,omitempty"`
	ProductFileBase64   string `json:"product_file_base64,omitempty"`
	ProductFileType     string `json:"product_file_type,omitempty"`
	MaxImages           int    `json:"max_images" binding:"omitempty,max=10"`
	VariantsPerPlatform int    `json:"variants_per_platform" binding:"omitempty,max=10"`
	HumanReviewRequired bool   `json:"human_review_required"`
}

// HasRemoteFile reports whether the product file should be fetched from a URL.
func (r *GenerationRequest) HasRemoteFile() bool {
	return r.ProductFileURL != ""
}

// HasInlineFile reports whether the product file was sent inline.
func (r *GenerationRequest) HasInlineFile() bool {
	return r.ProductFileBase64 != "" && r.ProductFileType != ""
}

// TargetAudience describes who the product is for.
type TargetAudience struct {
	Demographics string   `json:"demographics"`
	PainPoints   []string `json:"pain_points"`
	Desires      []string `json:"desires"`
}

// MarketInsights is the shared research used by every platform generation.
type MarketInsights struct {
	NicheTrends        []string       `json:"niche_trends"`
	CompetitorAnalysis []string       `json:"competitor_analysis"`
	TargetAudience     TargetAudience `json:"target_audience"`
	ViralElements      []string       `json:"viral_elements"`
	KeywordClusters    []string       `json:"keyword_clusters"`
}

// EmptyInsights returns insights with every list empty but non-nil.
func EmptyInsights() MarketInsights {
	return MarketInsights{
		NicheTrends:        []string{},
		CompetitorAnalysis: []string{},
		TargetAudience: TargetAudience{
			PainPoints: []string{},
			Desires:    []string{},
		},
		ViralElements:   []string{},
		KeywordClusters: []string{},
	}
}

// Normalize replaces nil lists with empty ones so the value serializes as arrays.
func (m *MarketInsights) Normalize() {
	if m.NicheTrends == nil {
		m.NicheTrends = []string{}
	}
	if m.CompetitorAnalysis == nil {
		m.CompetitorAnalysis = []string{}
	}
	if m.TargetAudience.PainPoints == nil {
		m.TargetAudience.PainPoints = []string{}
	}
	if m.TargetAudience.Desires == nil {
		m.TargetAudience.Desires = []string{}
	}
	if m.ViralElements == nil {
		m.ViralElements = []string{}
	}
	if m.KeywordClusters == nil {
		m.KeywordClusters = []string{}
	}
}

// MarketingAsset is one generated post variant for a platform.
type MarketingAsset struct {
	Platform        Platform `json:"platform"`
	VariantIndex    int      `json:"variant_index"`
	Caption         string   `json:"caption"`
	Hashtags        []string `json:"hashtags"`
	ImageURL        string   `json:"image_url,omitempty"`
	ImagePrompt     string   `json:"image_prompt"`
	CTA             string   `json:"cta"`
	BestPostingTime string   `json:"best_posting_time"`
	EngagementScore int      `json:"engagement_score"`
}

// GenerationResult is the response of a generation run.
type GenerationResult struct {
	ProductID          string           `json:"product_id"`
	Status             Status           `json:"status"`
	MasterAssetsS3     string           `json:"master_assets_s3,omitempty"`
	ResearchInsightsS3 string           `json:"research_insights_s3,omitempty"`
	Assets             []MarketingAsset `json:"assets"`
	ResearchInsights   MarketInsights   `json:"research_insights"`
	Error              string           `json:"error,omitempty"`
}

// Failed builds a failure result carrying the error text.
func Failed(productID string, err error) *GenerationResult {
	msg := "Unknown error"
	if err != nil {
		msg = err.Error()
	}
	return &GenerationResult{
		ProductID:        productID,
		Status:           StatusFailed,
		Assets:           []MarketingAsset{},
		ResearchInsights: EmptyInsights(),
		Error:            msg,
	}
}

// CountByPlatform returns how many assets each platform received.
func (r *GenerationResult) CountByPlatform() map[Platform]int {
	counts := make(map[Platform]int, len(Platforms))
	for _, a := range r.Assets {
		counts[a.Platform]++
	}
	return counts
}
