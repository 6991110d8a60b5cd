package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-ppt-api/internal/config"
)

func newGeminiServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-2.5-flash:generateContent"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestGemini(t *testing.T, baseURL string) *GeminiGenerator {
	t.Helper()
	g, err := NewGeminiGenerator(context.Background(), config.ProviderConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "gemini-2.5-flash",
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)
	return g
}

func TestGeminiGenerator_Success(t *testing.T) {
	srv := newGeminiServer(t, http.StatusOK, `{
		"candidates":[{"content":{"role":"model","parts":[{"text":"Slide 1: Intro\n- A"}]}}],
		"usageMetadata":{"promptTokenCount":12,"candidatesTokenCount":8}
	}`)

	text, err := newTestGemini(t, srv.URL).Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "Slide 1: Intro\n- A", text)
}

func TestGeminiGenerator_EmptyResponse(t *testing.T) {
	srv := newGeminiServer(t, http.StatusOK, `{"candidates":[]}`)

	_, err := newTestGemini(t, srv.URL).Generate(context.Background(), "prompt")
	require.ErrorIs(t, err, ErrEmptyResponse)
	assert.Equal(t, KindPermanent, Classify(err))
}

func TestGeminiGenerator_RateLimitedIsTransient(t *testing.T) {
	srv := newGeminiServer(t, http.StatusTooManyRequests,
		`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`)

	_, err := newTestGemini(t, srv.URL).Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, KindTransient, Classify(err))
}

func TestGeminiGenerator_BadRequestIsPermanent(t *testing.T) {
	srv := newGeminiServer(t, http.StatusBadRequest,
		`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)

	_, err := newTestGemini(t, srv.URL).Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, KindPermanent, Classify(err))
}
