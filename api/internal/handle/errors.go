package handle

import (
	"errors"
	"net/http"

	"emotion-detector/api/internal/emotion"
)

const (
	MessageInvalidBody = "Invalid request body!"
	MessageUnavailable = "Emotion classifier unavailable!"
	MessageInternal    = "Internal server error"
	MessagePostOnly    = "POST only"
)

var ErrInvalidBody = errors.New("invalid request body")

// ErrorResponse is the status and message an error maps to.
type ErrorResponse struct {
	StatusCode int
	Message    string
}

// MapError translates domain errors into HTTP responses.
func MapError(err error) ErrorResponse {
	switch {
	case errors.Is(err, emotion.ErrInvalidText):
		return ErrorResponse{StatusCode: http.StatusBadRequest, Message: emotion.InvalidTextMessage}
	case errors.Is(err, ErrInvalidBody):
		return ErrorResponse{StatusCode: http.StatusBadRequest, Message: MessageInvalidBody}
	case errors.Is(err, emotion.ErrClassifierUnavailable):
		return ErrorResponse{StatusCode: http.StatusBadGateway, Message: MessageUnavailable}
	default:
		return ErrorResponse{StatusCode: http.StatusInternalServerError, Message: MessageInternal}
	}
}
