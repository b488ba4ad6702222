package claude

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"emotion-detector/api/internal/emotion"
	"emotion-detector/api/internal/prompt"
	"emotion-detector/api/internal/util"
)

const maxTokens = 256

type Engine struct {
	APIKey string
	Model  string
	client anthropic.Client
}

// New builds the engine. Retries are disabled: one call per request.
func New(apiKey, model string, timeout time.Duration, opts ...option.RequestOption) *Engine {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if timeout > 0 {
		reqOpts = append(reqOpts, option.WithRequestTimeout(timeout))
	}
	reqOpts = append(reqOpts, opts...)

	return &Engine{
		APIKey: apiKey,
		Model:  model,
		client: anthropic.NewClient(reqOpts...),
	}
}

func (e *Engine) Name() string     { return "claude" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Classify(ctx context.Context, text string) (emotion.Result, error) {
	if util.IsBlank(text) {
		return emotion.IndeterminateResult(), nil
	}
	if e.APIKey == "" {
		return emotion.Result{}, emotion.Unavailable(e.Name(), errors.New("ANTHROPIC_API_KEY is empty"))
	}

	msg, err := e.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(e.Model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(0),
		System:      []anthropic.TextBlockParam{{Text: prompt.EmotionSystem}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return emotion.Result{}, emotion.Unavailable(e.Name(), err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return emotion.Result{}, emotion.Unavailable(e.Name(), errors.New("empty response"))
	}

	scores, err := emotion.ParseScores(sb.String())
	if err != nil {
		return emotion.Result{}, emotion.Unavailable(e.Name(), err)
	}
	return emotion.NewResult(scores), nil
}
