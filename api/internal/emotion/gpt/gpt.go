package gpt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"emotion-detector/api/internal/emotion"
	"emotion-detector/api/internal/prompt"
	"emotion-detector/api/internal/util"
)

type Engine struct {
	APIKey string
	Model  string
	client *openai.Client
}

func New(apiKey, model string, timeout time.Duration) *Engine {
	return NewWithBaseURL(apiKey, model, "", timeout)
}

// NewWithBaseURL points the client at an OpenAI compatible endpoint.
func NewWithBaseURL(apiKey, model, baseURL string, timeout time.Duration) *Engine {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	return &Engine{
		APIKey: apiKey,
		Model:  model,
		client: openai.NewClientWithConfig(cfg),
	}
}

func (e *Engine) Name() string { return "gpt" }

func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Classify(ctx context.Context, text string) (emotion.Result, error) {
	if util.IsBlank(text) {
		return emotion.IndeterminateResult(), nil
	}
	if e.APIKey == "" {
		return emotion.Result{}, emotion.Unavailable(e.Name(), errors.New("OPENAI_API_KEY is empty"))
	}

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.EmotionSystem},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return emotion.Result{}, emotion.Unavailable(e.Name(), err)
	}
	if len(resp.Choices) == 0 {
		return emotion.Result{}, emotion.Unavailable(e.Name(), errors.New("empty response"))
	}

	scores, err := emotion.ParseScores(resp.Choices[0].Message.Content)
	if err != nil {
		return emotion.Result{}, emotion.Unavailable(e.Name(), err)
	}
	return emotion.NewResult(scores), nil
}
