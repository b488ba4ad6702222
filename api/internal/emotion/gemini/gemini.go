package gemini

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"emotion-detector/api/internal/emotion"
	"emotion-detector/api/internal/prompt"
	"emotion-detector/api/internal/util"
)

type Engine struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

func New(apiKey, model string, timeout time.Duration) *Engine {
	return &Engine{
		APIKey:  strings.TrimSpace(apiKey),
		Model:   strings.TrimSpace(model),
		Timeout: timeout,
	}
}

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Classify(ctx context.Context, text string) (emotion.Result, error) {
	if util.IsBlank(text) {
		return emotion.IndeterminateResult(), nil
	}
	if e.APIKey == "" {
		return emotion.Result{}, emotion.Unavailable(e.Name(), errors.New("GEMINI_API_KEY is empty"))
	}
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return emotion.Result{}, emotion.Unavailable(e.Name(), err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(prompt.EmotionSystem)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return emotion.Result{}, emotion.Unavailable(e.Name(), err)
	}
	res, err := resultOf(resp)
	if err != nil {
		return emotion.Result{}, emotion.Unavailable(e.Name(), err)
	}
	return res, nil
}

func resultOf(resp *genai.GenerateContentResponse) (emotion.Result, error) {
	txt := firstText(resp)
	if txt == "" {
		return emotion.Result{}, errors.New("empty response")
	}
	scores, err := emotion.ParseScores(txt)
	if err != nil {
		return emotion.Result{}, err
	}
	return emotion.NewResult(scores), nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
