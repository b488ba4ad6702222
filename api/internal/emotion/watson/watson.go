package watson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"emotion-detector/api/internal/emotion"
)

const (
	DefaultBaseURL = "https://sn-watson-emotion.labs.skills.network"
	DefaultModelID = "emotion_aggregated-workflow_lang_en_stock"

	predictPath = "/v1/watson.runtime.nlp.v1/NlpService/EmotionPredict"
)

type predictRequest struct {
	RawDocument rawDocument `json:"raw_document"`
}

type rawDocument struct {
	Text string `json:"text"`
}

type predictResponse struct {
	EmotionPredictions []struct {
		Emotion json.RawMessage `json:"emotion"`
	} `json:"emotionPredictions"`
}

// Engine calls the Watson NLP EmotionPredict endpoint.
type Engine struct {
	BaseURL string
	ModelID string
	httpc   *http.Client
}

func New(baseURL, modelID string, timeout time.Duration) *Engine {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = DefaultModelID
	}
	return &Engine{
		BaseURL: strings.TrimRight(baseURL, "/"),
		ModelID: modelID,
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (e *Engine) Name() string { return "watson" }

// Classify returns an indeterminate result when Watson rejects the text with
// 400, which it does for blank input.
func (e *Engine) Classify(ctx context.Context, text string) (emotion.Result, error) {
	payload, err := json.Marshal(predictRequest{RawDocument: rawDocument{Text: text}})
	if err != nil {
		return emotion.Result{}, fmt.Errorf("watson: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.BaseURL+predictPath, bytes.NewReader(payload))
	if err != nil {
		return emotion.Result{}, fmt.Errorf("watson: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("grpc-metadata-mm-model-id", e.ModelID)

	resp, err := e.httpc.Do(req)
	if err != nil {
		return emotion.Result{}, emotion.Unavailable(e.Name(), err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return emotion.IndeterminateResult(), nil
	default:
		x, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return emotion.Result{}, emotion.Unavailable(e.Name(),
			fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(x))))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return emotion.Result{}, emotion.Unavailable(e.Name(), fmt.Errorf("decode response: %w", err))
	}
	if len(out.EmotionPredictions) == 0 {
		return emotion.Result{}, emotion.Unavailable(e.Name(), fmt.Errorf("empty emotionPredictions"))
	}
	scores, err := emotion.ParseScores(string(out.EmotionPredictions[0].Emotion))
	if err != nil {
		return emotion.Result{}, emotion.Unavailable(e.Name(), err)
	}
	return emotion.NewResult(scores), nil
}
