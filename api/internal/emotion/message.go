package emotion

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const InvalidTextMessage = "Invalid text! Please try again!"

// Message renders a scored result as the user facing sentence.
func Message(r Result) string {
	return fmt.Sprintf(
		"For the given statement, the system response is 'anger': %s, 'disgust': %s, 'fear': %s, 'joy': %s and 'sadness': %s. The dominant emotion is %s.",
		FormatScore(r.Scores.Anger),
		FormatScore(r.Scores.Disgust),
		FormatScore(r.Scores.Fear),
		FormatScore(r.Scores.Joy),
		FormatScore(r.Scores.Sadness),
		r.Dominant,
	)
}

// FormatScore prints the shortest decimal that round-trips to v. Integral
// values keep a ".0" suffix and very small or large magnitudes switch to
// exponent notation (1e-05, 1e+16).
func FormatScore(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if v != 0 && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
