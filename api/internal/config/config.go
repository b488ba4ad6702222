package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"emotion-detector/api/internal/emotion"
)

type Config struct {
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"PORT" default:"5000" validate:"min=1,max=65535"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json console"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s" validate:"gt=0"`

	Classifier        string        `envconfig:"CLASSIFIER" default:"watson" validate:"oneof=watson gpt gemini claude"`
	ClassifierTimeout time.Duration `envconfig:"CLASSIFIER_TIMEOUT" default:"30s" validate:"gt=0"`

	WatsonURL     string `envconfig:"WATSON_URL" default:"https://sn-watson-emotion.labs.skills.network" validate:"required,url"`
	WatsonModelID string `envconfig:"WATSON_MODEL_ID" default:"emotion_aggregated-workflow_lang_en_stock" validate:"required"`

	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY" validate:"required_if=Classifier gpt"`
	OpenAIModel  string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`

	GeminiAPIKey string `envconfig:"GEMINI_API_KEY" validate:"required_if=Classifier gemini"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`

	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY" validate:"required_if=Classifier claude"`
	AnthropicModel  string `envconfig:"ANTHROPIC_MODEL" default:"claude-3-5-haiku-latest"`

	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN"`
}

// Load reads the environment, after an optional .env in the working
// directory, and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	cfg.Classifier = emotion.CanonicalName(cfg.Classifier)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
