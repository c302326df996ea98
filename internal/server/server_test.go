// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jack999Lab/content-api/internal/catalog"
	"github.com/Jack999Lab/content-api/internal/pipeline"
	"github.com/Jack999Lab/content-api/internal/research"
	"github.com/Jack999Lab/content-api/pkg/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type offlineTransport struct{}

func (offlineTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("offline")
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cat := catalog.Default()
	fetcher := research.New(&http.Client{Transport: offlineTransport{}}, types.ResearchConfig{
		HTTPConfig:   types.HTTPConfig{Timeout: time.Second},
		MaxRetries:   1,
		RetryDelay:   time.Millisecond,
		ExtractLimit: 800,
	}, cat)

	pipe := pipeline.New(fetcher, cat, types.GeneratorConfig{
		DefaultLength: 500,
		MinLength:     100,
		MaxLength:     2000,
	})
	pipe.SetRandSource(func() *rand.Rand {
		return rand.New(rand.NewSource(1))
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(pipe, nil, nil, types.ServerConfig{AllowedOrigins: []string{"*"}}, "test", logger)
	return srv.Router()
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleHome(t *testing.T) {
	w := doJSON(testRouter(t), http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "running", body["status"])
	assert.Equal(t, "test", body["version"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHandleHealth(t *testing.T) {
	w := doJSON(testRouter(t), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "content-api", body["service"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestGeneratePost(t *testing.T) {
	w := doJSON(testRouter(t), http.MethodPost, "/generate",
		`{"topic":"Cloud Security","keywords":"encryption","tone":"casual","length":300}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body generateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Contains(t, body.Content, "Cloud Security")
	assert.LessOrEqual(t, body.WordCount, 300)
	assert.Equal(t, types.ToneCasual, body.Tone)
}

func TestGenerateGet(t *testing.T) {
	w := doJSON(testRouter(t), http.MethodGet, "/generate?topic=Testing&length=200", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body generateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Testing", body.Topic)
	assert.LessOrEqual(t, body.WordCount, 200)
}

func TestGenerateMissingTopic(t *testing.T) {
	w := doJSON(testRouter(t), http.MethodPost, "/generate", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "topic is required", body["error"])
}

func TestGenerateStringLengthFallsBack(t *testing.T) {
	w := doJSON(testRouter(t), http.MethodPost, "/generate",
		`{"topic":"Lenient","length":"not-a-number"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body generateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.LessOrEqual(t, body.WordCount, 500)
}

func TestGenerateFormFallback(t *testing.T) {
	router := testRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/generate",
		strings.NewReader("topic=Forms&length=200"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body generateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Forms", body.Topic)
}

func TestBatchMixedTopics(t *testing.T) {
	w := doJSON(testRouter(t), http.MethodPost, "/batch",
		`{"topics":["First",{"topic":"Second","tone":"academic"},""],"length":150}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool                 `json:"success"`
		Results []types.BatchOutcome `json:"results"`
		Count   int                  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Equal(t, 3, body.Count)

	assert.True(t, body.Results[0].Success)
	assert.True(t, body.Results[1].Success)
	assert.Equal(t, types.ToneAcademic, body.Results[1].Result.Tone)
	assert.False(t, body.Results[2].Success)
	assert.Equal(t, "topic is required", body.Results[2].Error)
}

func TestBatchTooManyTopics(t *testing.T) {
	topics := make([]string, pipeline.MaxBatchTopics+1)
	for i := range topics {
		topics[i] = `"Topic"`
	}
	w := doJSON(testRouter(t), http.MethodPost, "/batch",
		`{"topics":[`+strings.Join(topics, ",")+`],"length":120}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "provide 1-10 topics", body["error"])
}

func TestBatchInvalidBody(t *testing.T) {
	w := doJSON(testRouter(t), http.MethodPost, "/batch", `not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyze(t *testing.T) {
	w := doJSON(testRouter(t), http.MethodPost, "/analyze",
		`{"content":"# Title\n\nOne sentence here. Another sentence follows."}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success  bool                 `json:"success"`
		Analysis types.AnalysisReport `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Analysis.SentenceCount)
	assert.Equal(t, 1, body.Analysis.HeadingCount)
}

func TestAnalyzeMissingContent(t *testing.T) {
	w := doJSON(testRouter(t), http.MethodPost, "/analyze", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "content is required", body["error"])
}

func TestCORSPreflight(t *testing.T) {
	router := testRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/generate", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	router := testRouter(t)
	// Generate once so the counters exist.
	doJSON(router, http.MethodPost, "/generate", `{"topic":"Metrics","length":150}`)

	w := doJSON(router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "content_generations_total")
}
