package analyzer

// categoryInsights maps YouTube category IDs to one canned competitive
// insight per category.
var categoryInsights = map[string]string{
	"1":  "Film & Animation: Focus on trending topics and seasonal content for better discoverability.",
	"2":  "Autos & Vehicles: Create comparison videos and 'vs' content for high engagement.",
	"10": "Music: Consider lyric videos, covers, or music production tutorials.",
	"15": "Pets & Animals: Create heartwarming or funny compilations with storytelling elements.",
	"17": "Sports: Focus on highlights, analysis, and prediction content.",
	"19": "Travel & Events: Use location-based keywords and seasonal content strategies.",
	"20": "Gaming: Stream highlights, create tutorials, or review new games.",
	"22": "People & Blogs: Focus on storytelling and personal experiences.",
	"23": "Comedy: Create trending comedy formats and collaborate with other creators.",
	"24": "Entertainment: Stay current with pop culture and entertainment news.",
	"25": "News & Politics: Focus on timely, accurate reporting with clear sources.",
	"26": "Howto & Style: Create step-by-step tutorials and before/after content.",
	"27": "Education: Use clear explanations with visual aids and examples.",
	"28": "Science & Technology: Focus on explaining complex topics in simple terms.",
}

// CategoryInsight looks up the canned insight for a YouTube category ID.
func CategoryInsight(categoryID string) (string, bool) {
	insight, ok := categoryInsights[categoryID]
	return insight, ok
}
