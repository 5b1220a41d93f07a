package complaint

import "strings"

// categoryNames maps the messy category strings in the dataset onto their
// canonical display names. Anything not listed is title-cased as-is.
var categoryNames = map[string]string{
	"wrong orders":     "Wrong Orders",
	"wrong order":      "Wrong Orders",
	"wait times":       "Wait Times",
	"wait time":        "Wait Times",
	"customer service": "Customer Service",
	"app/tech":         "App/Tech",
	"app":              "App/Tech",
	"tech":             "App/Tech",
	"technology":       "App/Tech",
}

var categoryEmoji = map[string]string{
	"fries":            "🍟",
	"burgers":          "🍔",
	"wrong orders":     "📦",
	"wrong order":      "📦",
	"wait times":       "⏱️",
	"wait time":        "⏱️",
	"customer service": "😤",
	"cleanliness":      "🏪",
	"app/tech":         "📱",
	"app":              "📱",
	"tech":             "📱",
	"technology":       "📱",
	"miscellaneous":    "🌶️",
}

// NormalizeCategory maps a free-text category onto its canonical display
// name so that "wrong order" and "Wrong Orders" count as one bucket.
func NormalizeCategory(category string) string {
	normalized := strings.ToLower(strings.TrimSpace(category))
	if name, ok := categoryNames[normalized]; ok {
		return name
	}
	return TitleCase(category)
}

// CategoryEmoji returns the emoji badge for a category.
func CategoryEmoji(category string) string {
	normalized := strings.ToLower(strings.TrimSpace(category))
	if e, ok := categoryEmoji[normalized]; ok {
		return e
	}
	return "🌶️"
}

// TitleCase upper-cases the first letter of each space-separated word,
// leaving the rest of each word untouched.
func TitleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
