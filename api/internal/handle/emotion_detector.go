package handle

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"emotion-detector/api/internal/emotion"
)

const EmotionDetectorRoute = "/emotionDetector"

type emotionRequest struct {
	Text *string `json:"text"`
}

// EmotionDetector handles POST /emotionDetector.
func (h *Handle) EmotionDetector(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeMessage(w, http.StatusMethodNotAllowed, MessagePostOnly)
		return
	}

	text, err := decodeText(r.Body)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	msg, err := emotion.Analyze(r.Context(), h.clf, text)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, msg)
}

// decodeText treats an empty body, a null body and a missing "text" key as
// empty text. Anything after the first JSON value makes the body invalid.
func decodeText(body io.Reader) (string, error) {
	dec := json.NewDecoder(body)
	var req emotionRequest
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: trailing data after JSON object", ErrInvalidBody)
	}
	if req.Text == nil {
		return "", nil
	}
	return *req.Text, nil
}

func (h *Handle) fail(w http.ResponseWriter, r *http.Request, err error) {
	resp := MapError(err)

	var ev *zerolog.Event
	if resp.StatusCode >= http.StatusInternalServerError {
		ev = hlog.FromRequest(r).Error()
	} else {
		ev = hlog.FromRequest(r).Debug()
	}
	ev.Err(err).Str("classifier", h.clf.Name()).Int("status", resp.StatusCode).Msg("emotion detection failed")

	writeMessage(w, resp.StatusCode, resp.Message)
}
