package emotion

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidText means the classifier could not score the text.
	ErrInvalidText = errors.New("invalid text")
	// ErrClassifierUnavailable covers transport failures, timeouts and
	// malformed classifier output.
	ErrClassifierUnavailable = errors.New("emotion classifier unavailable")
)

type Classifier interface {
	Name() string
	Classify(ctx context.Context, text string) (Result, error)
}

// Unavailable wraps err as ErrClassifierUnavailable, tagged with the engine name.
func Unavailable(engine string, err error) error {
	if errors.Is(err, ErrClassifierUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrClassifierUnavailable, engine, err)
}

// Analyze runs one classification and renders the response sentence.
func Analyze(ctx context.Context, c Classifier, text string) (string, error) {
	res, err := c.Classify(ctx, text)
	if err != nil {
		return "", Unavailable(c.Name(), err)
	}
	if res.Dominant.IsIndeterminate() {
		return "", ErrInvalidText
	}
	return Message(res), nil
}
