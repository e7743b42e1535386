package generator

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ReplyContent is the parsed body of one AI reply.
type ReplyContent struct {
	Summary             string
	ImprovementAreas    []string
	SuggestedActivities []string
	Safety              []string
}

// MalformedReplyError tags a reply that could not be parsed. It carries the
// raw text so operators can inspect what the model actually returned.
type MalformedReplyError struct {
	Raw    string
	Reason string
}

func (e *MalformedReplyError) Error() string {
	return fmt.Sprintf("malformed AI reply: %s", e.Reason)
}

// Canned placeholder strings. One per category so the output is never empty.
const (
	PlaceholderRecommendation = "No specific recommendations available."
	PlaceholderRoutine        = "Continue with your current routine."
	PlaceholderImprovement    = "No specific improvements suggested."
	PlaceholderSuggestion     = "No specific workout suggestions provided."
	PlaceholderSafety         = "No specific safety guidelines provided."
)

// ParseReply descends into the provider's wrapper document, strips the
// Markdown code fences around the embedded JSON, and extracts the
// recommendation content. A failure at any step returns *MalformedReplyError;
// the caller is expected to substitute FallbackContent.
func ParseReply(raw string) (ReplyContent, error) {
	text := gjson.Get(raw, "candidates.0.content.parts.0.text")
	if !text.Exists() {
		return ReplyContent{}, &MalformedReplyError{Raw: raw, Reason: "missing candidates[0].content.parts[0].text"}
	}

	inner := stripCodeFence(text.String())
	if !gjson.Valid(inner) {
		return ReplyContent{}, &MalformedReplyError{Raw: raw, Reason: "embedded document is not valid JSON"}
	}
	doc := gjson.Parse(inner)

	var summary strings.Builder
	analysis := doc.Get("analysis")
	addAnalysisSection(&summary, analysis, "overall", "Overall Analysis:")
	addAnalysisSection(&summary, analysis, "pace", "Pace:")
	addAnalysisSection(&summary, analysis, "heartRate", "Heart Rate:")
	addAnalysisSection(&summary, analysis, "caloriesBurned", "Calories:")

	return ReplyContent{
		Summary:             strings.TrimSpace(summary.String()),
		ImprovementAreas:    extractPairs(doc.Get("improvements"), "area", "recommendation", PlaceholderImprovement),
		SuggestedActivities: extractPairs(doc.Get("suggestions"), "workout", "description", PlaceholderSuggestion),
		Safety:              extractStrings(doc.Get("safety"), PlaceholderSafety),
	}, nil
}

// FallbackContent builds the fixed placeholder content emitted when the reply
// cannot be parsed.
func FallbackContent() ReplyContent {
	return ReplyContent{
		Summary:             PlaceholderRecommendation,
		ImprovementAreas:    []string{PlaceholderRoutine},
		SuggestedActivities: []string{PlaceholderSuggestion},
		Safety:              []string{PlaceholderSafety},
	}
}

func stripCodeFence(text string) string {
	text = strings.ReplaceAll(text, "```json\n", "")
	text = strings.ReplaceAll(text, "\n```", "")
	return strings.TrimSpace(text)
}

func addAnalysisSection(summary *strings.Builder, analysis gjson.Result, key, prefix string) {
	section := analysis.Get(key)
	if !section.Exists() {
		return
	}
	summary.WriteString(prefix)
	summary.WriteString(" ")
	summary.WriteString(section.String())
	summary.WriteString("\n")
}

// extractPairs maps array elements of {first, second} shape into
// "first: second" strings, substituting the placeholder when the array is
// absent or empty.
func extractPairs(node gjson.Result, firstKey, secondKey, placeholder string) []string {
	out := make([]string, 0)
	if node.IsArray() {
		node.ForEach(func(_, item gjson.Result) bool {
			out = append(out, fmt.Sprintf("%s: %s", item.Get(firstKey).String(), item.Get(secondKey).String()))
			return true
		})
	}
	if len(out) == 0 {
		return []string{placeholder}
	}
	return out
}

func extractStrings(node gjson.Result, placeholder string) []string {
	out := make([]string, 0)
	if node.IsArray() {
		node.ForEach(func(_, item gjson.Result) bool {
			out = append(out, item.String())
			return true
		})
	}
	if len(out) == 0 {
		return []string{placeholder}
	}
	return out
}
