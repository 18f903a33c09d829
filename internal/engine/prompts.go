package engine

// AnalysisPrompt is the research prompt template.
// Arguments: product name, niche, landing URL, product content.
const AnalysisPrompt = `You are an expert marketing researcher. Analyze this digital product and provide deep insights for viral organic marketing.

Product Name: %s
Niche: %s
Landing URL: %s

Product Content:
%s

Provide a JSON response with:
1. niche_trends: Current trending topics in this niche (array of 5-10 trends)
2. competitor_analysis: Key insights about competitors (array of 3-5 points)
3. target_audience: {
   demographics: string description
   pain_points: array of 5-8 pain points
   desires: array of 5-8 desires/goals
}
4. viral_elements: What makes content go viral in this niche (array of 5-8 elements)
5. keyword_clusters: High-value keywords and phrases (array of 10-15 keywords)

Return ONLY valid JSON, no markdown formatting.`

// AssetPrompt is the copywriting prompt template.
// Arguments: variant count, platform, product name, niche, landing URL,
// demographics, pain points, desires, viral elements, keywords,
// char limit, hashtag strategy, best practices, variant count.
const AssetPrompt = `You are a viral marketing copywriter. Create %d high-converting social media posts for %s.

Product: %s
Niche: %s
Landing URL: %s

Target Audience:
- Demographics: %s
- Pain Points: %s
- Desires: %s

Viral Elements to Include: %s
Top Keywords: %s

Platform Specs:
- Character Limit: %d
- Hashtag Strategy: %s
- Best Practices: %s

Generate %d variants, each with:
1. caption: Engaging post copy (within character limit)
2. hashtags: Array of 5-10 relevant hashtags (no # symbol)
3. image_prompt: Detailed DALL-E/Midjourney prompt for eye-catching image (50-100 words, focus on visual elements, colors, composition, style)
4. cta: Clear call-to-action phrase
5. best_posting_time: Best time to post (e.g., "Monday 9AM EST", "Weekend evenings")
6. engagement_score: Predicted virality score 1-100

Return ONLY valid JSON array, no markdown formatting.`
