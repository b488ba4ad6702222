package emotion

import (
	"github.com/samber/lo"
)

type Emotion string

const (
	Anger   Emotion = "anger"
	Disgust Emotion = "disgust"
	Fear    Emotion = "fear"
	Joy     Emotion = "joy"
	Sadness Emotion = "sadness"
)

// All lists the emotions in canonical order. Messages and tie-breaks follow it.
var All = []Emotion{Anger, Disgust, Fear, Joy, Sadness}

func (e Emotion) Valid() bool { return lo.Contains(All, e) }

func (e Emotion) String() string { return string(e) }

// Scores is the confidence of every emotion for one piece of text.
type Scores struct {
	Anger   float64 `json:"anger"`
	Disgust float64 `json:"disgust"`
	Fear    float64 `json:"fear"`
	Joy     float64 `json:"joy"`
	Sadness float64 `json:"sadness"`
}

func (s Scores) Of(e Emotion) float64 {
	switch e {
	case Anger:
		return s.Anger
	case Disgust:
		return s.Disgust
	case Fear:
		return s.Fear
	case Joy:
		return s.Joy
	case Sadness:
		return s.Sadness
	}
	return 0
}

// Dominant is either one of the five emotions or Indeterminate.
// The zero value is Indeterminate.
type Dominant struct {
	emotion Emotion
}

var Indeterminate = Dominant{}

func DominantEmotion(e Emotion) Dominant {
	if !e.Valid() {
		return Indeterminate
	}
	return Dominant{emotion: e}
}

// DominantOf picks the highest score. Equal scores resolve to the emotion
// that comes first in All.
func DominantOf(s Scores) Dominant {
	top := lo.MaxBy(All, func(a, b Emotion) bool {
		return s.Of(a) > s.Of(b)
	})
	return DominantEmotion(top)
}

func (d Dominant) Emotion() (Emotion, bool) {
	return d.emotion, d.emotion != ""
}

func (d Dominant) IsIndeterminate() bool { return d.emotion == "" }

func (d Dominant) String() string {
	if d.IsIndeterminate() {
		return "indeterminate"
	}
	return string(d.emotion)
}

type Result struct {
	Scores   Scores
	Dominant Dominant
}

// NewResult derives the dominant emotion from the scores.
func NewResult(s Scores) Result {
	return Result{Scores: s, Dominant: DominantOf(s)}
}

// IndeterminateResult is returned by engines for text they cannot analyze.
func IndeterminateResult() Result {
	return Result{Dominant: Indeterminate}
}
