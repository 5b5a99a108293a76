package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, ""},
		{"validation", &ValidationError{Fields: []string{"name"}}, KindValidation},
		{"deadline", fmt.Errorf("wrapped: %w", context.DeadlineExceeded), KindTimeout},
		{"transport deadline", &TransportError{Op: "GET /x", Err: context.DeadlineExceeded}, KindTimeout},
		{"server", &APIError{StatusCode: 500}, KindServer},
		{"transport", &TransportError{Op: "GET /x", Err: errors.New("refused")}, KindNoResponse},
		{"other", errors.New("boom"), KindOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	assert.Equal(t, "backend API error: status 404", (&APIError{StatusCode: 404}).Error())
	assert.Equal(t, "backend API error: status 400: bad", (&APIError{StatusCode: 400, Message: "bad"}).Error())
}
