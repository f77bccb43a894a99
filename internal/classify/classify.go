package classify

import (
	"fmt"
	"strings"
)

// Category is the topical label assigned to an article.
type Category string

const (
	LLM    Category = "llm"
	ML     Category = "ml"
	Vision Category = "vision"
	Ethics Category = "ethics"

	// All is a filter value, never assigned to an article.
	All Category = "all"
)

// AllCategories returns the assignable categories in canonical order.
func AllCategories() []Category {
	return []Category{LLM, ML, Vision, Ethics}
}

var categoryLabels = map[Category]string{
	LLM:    "LLMs",
	ML:     "Machine Learning",
	Vision: "Computer Vision",
	Ethics: "AI Ethics",
	All:    "All",
}

// Label returns the human-readable name for a category.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Valid reports whether c is an assignable category.
func (c Category) Valid() bool {
	for _, cat := range AllCategories() {
		if c == cat {
			return true
		}
	}
	return false
}

// Keyword sets are checked in precedence order: an article mentioning both
// an LLM keyword and a vision keyword is an LLM article.
var llmKeywords = []string{
	"llm", "gpt", "chatgpt", "claude", "gemini", "language model",
	"openai", "anthropic", "transformer", "chatbot", "llama", "mistral",
	"prompt", "copilot",
}

var visionKeywords = []string{
	"computer vision", "image generation", "object detection", "camera",
	"diffusion", "midjourney", "dall-e", "segmentation", "facial recognition",
	"image recognition", "opencv", "video generation",
}

var ethicsKeywords = []string{
	"ethics", "ethical", "bias", "regulation", "policy", "governance",
	"privacy", "copyright", "lawsuit", "misinformation", "deepfake",
	"ai safety", "responsible ai",
}

var mlKeywords = []string{
	"machine learning", "deep learning", "neural", "training", "dataset",
	"model", "algorithm", "reinforcement", "inference", "benchmark",
}

// Categorize assigns a category from the article's title and description.
// Matching is a case-insensitive substring scan over the concatenated text,
// first matching keyword set wins. Unmatched articles fall into ML, the
// deliberate catch-all.
func Categorize(title, description string) Category {
	text := strings.ToLower(title + " " + description)

	sets := []struct {
		cat      Category
		keywords []string
	}{
		{LLM, llmKeywords},
		{Vision, visionKeywords},
		{Ethics, ethicsKeywords},
		{ML, mlKeywords},
	}

	for _, set := range sets {
		for _, kw := range set.keywords {
			if strings.Contains(text, kw) {
				return set.cat
			}
		}
	}
	return ML
}

// ParseCategory maps user input (CLI flag or filter key) to a category,
// accepting the identifier or the display label case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, string(All)) {
		return All, nil
	}
	for _, cat := range AllCategories() {
		if strings.EqualFold(s, string(cat)) || strings.EqualFold(s, cat.Label()) {
			return cat, nil
		}
	}
	valid := make([]string, 0, len(AllCategories())+1)
	valid = append(valid, string(All))
	for _, cat := range AllCategories() {
		valid = append(valid, string(cat))
	}
	return "", fmt.Errorf("unknown category %q (valid: %s)", s, strings.Join(valid, ", "))
}
