package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadActivityDefaults(t *testing.T) {
	cfg := LoadActivity()

	require.Equal(t, ":8082", cfg.HTTPAddress)
	require.Equal(t, []string{"kafka:9092"}, cfg.KafkaBrokers)
	require.Equal(t, "activity_events", cfg.ActivityTopic)
	require.Equal(t, 5*time.Second, cfg.UserTimeout)
}

func TestLoadActivityOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9999")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092")
	t.Setenv("USER_VALIDATION_TIMEOUT", "250ms")

	cfg := LoadActivity()

	require.Equal(t, ":9999", cfg.HTTPAddress)
	require.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
	require.Equal(t, 250*time.Millisecond, cfg.UserTimeout)
}

func TestLoadAIDefaults(t *testing.T) {
	cfg := LoadAI()

	require.Equal(t, "ai-recommendation-worker", cfg.ConsumerGroup)
	require.Equal(t, ":9095", cfg.MetricsAddress)
	require.Equal(t, 30*time.Second, cfg.GeminiTimeout)
}

func TestLoadGatewayDefaults(t *testing.T) {
	cfg := LoadGateway()

	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Equal(t, "fitness.identity", cfg.JWTIssuer)
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("GEMINI_TIMEOUT", "soon")

	cfg := LoadAI()
	require.Equal(t, 30*time.Second, cfg.GeminiTimeout)
}

func TestEmptyEnvUsesFallback(t *testing.T) {
	t.Setenv("ACTIVITY_TOPIC", "")

	cfg := LoadActivity()
	require.Equal(t, "activity_events", cfg.ActivityTopic)
}
