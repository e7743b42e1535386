package generator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func wrapReply(t *testing.T, inner string) string {
	t.Helper()
	fenced := "```json\n" + inner + "\n```"
	wrapper := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{
						map[string]any{"text": fenced},
					},
				},
			},
		},
	}
	raw, err := json.Marshal(wrapper)
	require.NoError(t, err)
	return string(raw)
}

func TestParseReplyFullDocument(t *testing.T) {
	inner := `{
        "analysis": {
            "overall": "Solid session.",
            "pace": "Steady throughout.",
            "heartRate": "Zone 2 mostly.",
            "caloriesBurned": "On target."
        },
        "improvements": [
            {"area": "Cadence", "recommendation": "Aim for 175 spm."}
        ],
        "suggestions": [
            {"workout": "Tempo Run", "description": "20 minutes at threshold."}
        ],
        "safety": ["Hydrate well.", "Warm up first."]
    }`

	content, err := ParseReply(wrapReply(t, inner))
	require.NoError(t, err)

	require.Equal(t, "Overall Analysis: Solid session.\nPace: Steady throughout.\nHeart Rate: Zone 2 mostly.\nCalories: On target.", content.Summary)
	require.Equal(t, []string{"Cadence: Aim for 175 spm."}, content.ImprovementAreas)
	require.Equal(t, []string{"Tempo Run: 20 minutes at threshold."}, content.SuggestedActivities)
	require.Equal(t, []string{"Hydrate well.", "Warm up first."}, content.Safety)
}

func TestParseReplyMissingAnalysisFieldsAreSkipped(t *testing.T) {
	inner := `{
        "analysis": {"overall": "Good effort."},
        "improvements": [{"area": "Form", "recommendation": "Keep elbows in."}],
        "suggestions": [{"workout": "Recovery Ride", "description": "Easy spin."}],
        "safety": ["Stretch after."]
    }`

	content, err := ParseReply(wrapReply(t, inner))
	require.NoError(t, err)
	require.Equal(t, "Overall Analysis: Good effort.", content.Summary)
}

func TestParseReplyEmptyImprovementsGetPlaceholder(t *testing.T) {
	inner := `{
        "analysis": {"overall": "Fine."},
        "improvements": [],
        "suggestions": [{"workout": "Yoga Flow", "description": "30 minutes."}],
        "safety": ["Listen to your body."]
    }`

	content, err := ParseReply(wrapReply(t, inner))
	require.NoError(t, err)
	require.Equal(t, []string{PlaceholderImprovement}, content.ImprovementAreas)
}

func TestParseReplyOmittedSafetyGetsPlaceholder(t *testing.T) {
	inner := `{
        "analysis": {"overall": "Fine."},
        "improvements": [{"area": "Pacing", "recommendation": "Negative splits."}],
        "suggestions": [{"workout": "Long Walk", "description": "Low intensity."}]
    }`

	content, err := ParseReply(wrapReply(t, inner))
	require.NoError(t, err)
	require.Equal(t, []string{"No specific safety guidelines provided."}, content.Safety)
}

func TestParseReplyMissingWrapperPath(t *testing.T) {
	_, err := ParseReply(`{"error": {"code": 429}}`)

	var malformed *MalformedReplyError
	require.ErrorAs(t, err, &malformed)
	require.Contains(t, malformed.Raw, "429")
}

func TestParseReplyInvalidInnerJSON(t *testing.T) {
	_, err := ParseReply(wrapReply(t, `not json at all`))

	var malformed *MalformedReplyError
	require.ErrorAs(t, err, &malformed)
}

func TestFallbackContentIsComplete(t *testing.T) {
	content := FallbackContent()

	require.Equal(t, PlaceholderRecommendation, content.Summary)
	require.Equal(t, []string{PlaceholderRoutine}, content.ImprovementAreas)
	require.Equal(t, []string{PlaceholderSuggestion}, content.SuggestedActivities)
	require.Equal(t, []string{PlaceholderSafety}, content.Safety)
}

func TestStripCodeFence(t *testing.T) {
	require.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	require.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
}
