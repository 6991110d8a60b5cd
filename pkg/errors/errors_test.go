package errors

import (
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeToHTTPStatus(t *testing.T) {
	cases := map[ErrorCode]int{
		CodeInvalidParam:     http.StatusBadRequest,
		CodeNoValidSlides:    http.StatusBadRequest,
		CodeFileNotFound:     http.StatusNotFound,
		CodeTooManyRequests:  http.StatusTooManyRequests,
		CodeLLMCallFailed:    http.StatusInternalServerError,
		CodeLLMProviderError: http.StatusInternalServerError,
		CodeStorageError:     http.StatusInternalServerError,
	}
	for code, status := range cases {
		assert.Equal(t, status, New(code, "x").HTTPStatus, "code %s", code)
	}
}

func TestAsAppError_UnwrapsWrappedChain(t *testing.T) {
	inner := New(CodeNoValidSlides, "No valid slides found")
	wrapped := fmt.Errorf("handler: %w", inner)

	require.True(t, IsAppError(wrapped))
	got := AsAppError(wrapped)
	assert.Same(t, inner, got)
}

func TestAsAppError_PlainErrorBecomesUnknown(t *testing.T) {
	got := AsAppError(io.EOF)
	assert.Equal(t, CodeUnknown, got.Code)
	assert.ErrorIs(t, got, io.EOF)
	assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus)
}

func TestPredefinedErrors(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
		msg    string
	}{
		{ErrNotFound, http.StatusNotFound, "Not found"},
		{ErrFileNotFound, http.StatusNotFound, "File not found"},
		{ErrTooManyRequests, http.StatusTooManyRequests, "rate limit exceeded"},
		{ErrInternalError, http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.HTTPStatus, "code %s", tc.err.Code)
		assert.Equal(t, tc.msg, tc.err.Message)
	}
}
