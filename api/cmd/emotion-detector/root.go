package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"emotion-detector/api/internal/config"
	"emotion-detector/api/internal/emotion"
	"emotion-detector/api/internal/emotion/claude"
	"emotion-detector/api/internal/emotion/gemini"
	"emotion-detector/api/internal/emotion/gpt"
	"emotion-detector/api/internal/emotion/watson"
	"emotion-detector/api/internal/logging"
)

type app struct {
	cfg *config.Config
	log zerolog.Logger
	clf emotion.Classifier
}

func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "emotion-detector",
		Short: "Emotion detection API",
		Long: `emotion-detector scores text for anger, disgust, fear, joy and sadness using an
external classifier, and serves the result over HTTP or Telegram.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			return a.init(debug)
		},
	}
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(NewServeCommand(a))
	rootCmd.AddCommand(NewAnalyzeCommand(a))
	rootCmd.AddCommand(NewBotCommand(a))

	return rootCmd
}

func (a *app) init(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.Setup(cfg.LogLevel, cfg.LogFormat, debug)

	clf, err := newClassifier(cfg)
	if err != nil {
		return fmt.Errorf("classifier: %w", err)
	}
	a.clf = clf
	a.log.Debug().Str("classifier", clf.Name()).Msg("classifier ready")
	return nil
}

func newClassifier(cfg *config.Config) (emotion.Classifier, error) {
	engines := &emotion.Engines{
		Watson: watson.New(cfg.WatsonURL, cfg.WatsonModelID, cfg.ClassifierTimeout),
		OpenAI: gpt.New(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.ClassifierTimeout),
		Gemini: gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.ClassifierTimeout),
		Claude: claude.New(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.ClassifierTimeout),
	}
	return engines.GetEngine(cfg.Classifier)
}
