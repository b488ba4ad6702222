package emotion

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"emotion-detector/api/internal/util"
)

// ParseScores decodes the JSON object LLM engines answer with. Code fences
// around the object are tolerated, extra keys are ignored and all five
// emotions must be present.
func ParseScores(raw string) (Scores, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(util.StripCodeFences(raw)), &fields); err != nil {
		return Scores{}, fmt.Errorf("bad JSON: %w", err)
	}

	missing := lo.Filter(All, func(e Emotion, _ int) bool {
		_, ok := fields[string(e)]
		return !ok
	})
	if len(missing) > 0 {
		return Scores{}, fmt.Errorf("missing scores: %s", strings.Join(lo.Map(missing, func(e Emotion, _ int) string {
			return string(e)
		}), ", "))
	}

	var s Scores
	for _, e := range All {
		var v float64
		if err := json.Unmarshal(fields[string(e)], &v); err != nil {
			return Scores{}, fmt.Errorf("score %s: %w", e, err)
		}
		switch e {
		case Anger:
			s.Anger = v
		case Disgust:
			s.Disgust = v
		case Fear:
			s.Fear = v
		case Joy:
			s.Joy = v
		case Sadness:
			s.Sadness = v
		}
	}
	return s, nil
}
