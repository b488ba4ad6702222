package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"HOST", "PORT", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT",
	"CLASSIFIER", "CLASSIFIER_TIMEOUT", "WATSON_URL", "WATSON_MODEL_ID",
	"OPENAI_API_KEY", "OPENAI_MODEL", "GEMINI_API_KEY", "GEMINI_MODEL",
	"ANTHROPIC_API_KEY", "ANTHROPIC_MODEL", "TELEGRAM_BOT_TOKEN",
}

// clearEnv unsets every variable Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads default configuration", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0", cfg.Host)
		assert.Equal(t, 5000, cfg.Port)
		assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)

		assert.Equal(t, "watson", cfg.Classifier)
		assert.Equal(t, 30*time.Second, cfg.ClassifierTimeout)
		assert.Equal(t, "https://sn-watson-emotion.labs.skills.network", cfg.WatsonURL)
		assert.Equal(t, "emotion_aggregated-workflow_lang_en_stock", cfg.WatsonModelID)
		assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
		assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	})

	t.Run("reads from environment variables", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "9090")
		t.Setenv("HOST", "127.0.0.1")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("CLASSIFIER_TIMEOUT", "5s")
		t.Setenv("WATSON_URL", "http://watson.internal:8080")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 5*time.Second, cfg.ClassifierTimeout)
		assert.Equal(t, "http://watson.internal:8080", cfg.WatsonURL)
	})

	t.Run("folds classifier aliases", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CLASSIFIER", "OpenAI")
		t.Setenv("OPENAI_API_KEY", "sk-test")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "gpt", cfg.Classifier)
	})

	t.Run("requires the key of the selected engine", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CLASSIFIER", "claude")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "AnthropicAPIKey")
	})

	t.Run("rejects unknown classifier", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CLASSIFIER", "bert")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Classifier")
	})

	t.Run("rejects out of range port", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "70000")

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("rejects malformed duration", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")

		_, err := Load()

		assert.Error(t, err)
	})
}
