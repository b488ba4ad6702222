package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	t.Run("json output at configured level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := setup(&buf, "warn", "json", false)

		logger.Info().Msg("hidden")
		logger.Warn().Str("component", "test").Msg("shown")

		assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"component":"test"`)
		assert.Contains(t, buf.String(), `"message":"shown"`)
	})

	t.Run("debug flag wins", func(t *testing.T) {
		var buf bytes.Buffer
		logger := setup(&buf, "error", "json", true)
		assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := setup(&buf, "loud", "json", false)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("console format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := setup(&buf, "info", "console", false)
		logger.Info().Msg("hello")

		assert.Contains(t, buf.String(), "hello")
		assert.NotContains(t, buf.String(), `"message"`)
	})

	t.Run("sets the global logger", func(t *testing.T) {
		var buf bytes.Buffer
		setup(&buf, "info", "json", false)
		log.Info().Msg("global")

		assert.Contains(t, buf.String(), "global")
	})
}
