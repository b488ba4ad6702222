package emotion

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownEngine = errors.New("unknown classifier; use 'watson', 'gpt', 'gemini' or 'claude'")

type Engines struct {
	Watson Classifier
	OpenAI Classifier
	Gemini Classifier
	Claude Classifier
}

// CanonicalName folds engine aliases onto the names GetEngine reports.
func CanonicalName(name string) string {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "openai":
		return "gpt"
	case "anthropic":
		return "claude"
	case "":
		return "watson"
	default:
		return n
	}
}

func (e *Engines) GetEngine(name string) (Classifier, error) {
	var c Classifier
	switch n := CanonicalName(name); n {
	case "watson":
		c = e.Watson
	case "gpt":
		c = e.OpenAI
	case "gemini":
		c = e.Gemini
	case "claude":
		c = e.Claude
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	if c == nil {
		return nil, fmt.Errorf("classifier %q is not configured", CanonicalName(name))
	}
	return c, nil
}
