package handle

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"emotion-detector/api/internal/emotion"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid text", emotion.ErrInvalidText, http.StatusBadRequest, "Invalid text! Please try again!"},
		{"invalid body", fmt.Errorf("%w: unexpected EOF", ErrInvalidBody), http.StatusBadRequest, MessageInvalidBody},
		{"classifier unavailable", emotion.Unavailable("watson", errors.New("timeout")), http.StatusBadGateway, MessageUnavailable},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, MessageInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			assert.Equal(t, tt.wantStatus, got.StatusCode)
			assert.Equal(t, tt.wantMsg, got.Message)
		})
	}
}
