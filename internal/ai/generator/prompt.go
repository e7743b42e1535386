package generator

import (
	"fmt"

	"github.com/saatviknagpal/fitness-app/internal/platform/events"
)

const promptTemplate = `Analyze this fitness activity and provide detailed recommendations in the following EXACT JSON format:
{
  "analysis": {
    "overall": "Overall analysis here",
    "pace": "Pace analysis here",
    "heartRate": "Heart rate analysis here",
    "caloriesBurned": "Calories analysis here"
  },
  "improvements": [
    {
      "area": "Area name",
      "recommendation": "Detailed recommendation"
    }
  ],
  "suggestions": [
    {
      "workout": "Workout name",
      "description": "Detailed workout description"
    }
  ],
  "safety": [
    "Safety point 1",
    "Safety point 2"
  ]
}

Analyze this activity:
Activity Type: %s
Duration: %d minutes
Calories Burned: %d
Additional Metrics: %v

Provide detailed analysis focusing on performance, improvements, next workout suggestions, and safety guidelines.
Ensure the response follows the EXACT JSON format shown above.
`

// BuildPrompt renders the deterministic prompt for one activity event.
func BuildPrompt(event events.ActivityRecorded) string {
	return fmt.Sprintf(promptTemplate,
		event.ActivityType,
		event.DurationMin,
		event.CaloriesBurned,
		event.Metrics,
	)
}
