// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jack999Lab/content-api/internal/pipeline"
	"github.com/Jack999Lab/content-api/internal/score"
	"github.com/Jack999Lab/content-api/pkg/types"
)

// generateBody is the wire form of a generation request. Length may
// arrive as a number or a string; an unparsable value falls back to the
// configured default rather than failing the request.
type generateBody struct {
	Topic    string          `json:"topic"`
	Keywords string          `json:"keywords"`
	Tone     string          `json:"tone"`
	Length   json.RawMessage `json:"length"`
}

// batchBody is the wire form of a batch request. Each topic is either a
// bare string or an object overriding keywords/tone/length.
type batchBody struct {
	Topics   []json.RawMessage `json:"topics"`
	Keywords string            `json:"keywords"`
	Tone     string            `json:"tone"`
	Length   json.RawMessage   `json:"length"`
}

type batchTopicBody struct {
	Topic    string          `json:"topic"`
	Keywords string          `json:"keywords"`
	Tone     string          `json:"tone"`
	Length   json.RawMessage `json:"length"`
}

type generateResponse struct {
	Success bool `json:"success"`
	types.GenerationResult
}

func (s *Server) handleHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "Content Generator API",
		"version": s.version,
		"status":  "running",
		"endpoints": gin.H{
			"GET /health":            "Health check",
			"POST /generate":         "Generate content",
			"GET /generate?topic=..": "Generate via GET",
			"POST /batch":            "Generate for 1-10 topics",
			"POST /analyze":          "Analyze existing content",
			"GET /metrics":           "Prometheus metrics",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "content-api",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleGenerate(c *gin.Context) {
	req, ok := s.readGenerateRequest(c)
	if !ok {
		return
	}

	start := time.Now()
	result, err := s.pipe.Generate(c.Request.Context(), req, logWriter{s.logger})
	s.metrics.GenerationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		s.fail(c, err)
		return
	}
	s.metrics.GenerationsTotal.WithLabelValues("ok").Inc()
	s.record(c, result)

	c.JSON(http.StatusOK, generateResponse{Success: true, GenerationResult: result})
}

// readGenerateRequest builds a GenerationRequest from either query
// parameters (GET), a JSON body, or form values. A false return means the
// request was already rejected.
func (s *Server) readGenerateRequest(c *gin.Context) (types.GenerationRequest, bool) {
	if c.Request.Method == http.MethodGet {
		return types.GenerationRequest{
			Topic:    c.Query("topic"),
			Keywords: c.Query("keywords"),
			Tone:     types.Tone(c.Query("tone")),
			Length:   types.ParseLength(c.Query("length"), 0),
		}, true
	}

	var body generateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		// Non-JSON callers post form fields instead.
		return types.GenerationRequest{
			Topic:    c.PostForm("topic"),
			Keywords: c.PostForm("keywords"),
			Tone:     types.Tone(c.PostForm("tone")),
			Length:   types.ParseLength(c.PostForm("length"), 0),
		}, true
	}
	return types.GenerationRequest{
		Topic:    body.Topic,
		Keywords: body.Keywords,
		Tone:     types.Tone(body.Tone),
		Length:   lengthFromJSON(body.Length),
	}, true
}

func (s *Server) handleBatch(c *gin.Context) {
	var body batchBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	topics := make([]types.BatchTopic, 0, len(body.Topics))
	for _, raw := range body.Topics {
		topics = append(topics, parseBatchTopic(raw))
	}

	defaults := types.GenerationRequest{
		Keywords: body.Keywords,
		Tone:     types.Tone(body.Tone),
		Length:   lengthFromJSON(body.Length),
	}

	outcomes, err := s.pipe.GenerateBatch(c.Request.Context(), topics, defaults, logWriter{s.logger})
	if err != nil {
		s.fail(c, err)
		return
	}
	for _, o := range outcomes {
		if o.Success && o.Result != nil {
			s.metrics.GenerationsTotal.WithLabelValues("ok").Inc()
			s.record(c, *o.Result)
		} else {
			s.metrics.GenerationsTotal.WithLabelValues("error").Inc()
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": outcomes,
		"count":   len(outcomes),
	})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var body struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "content is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"analysis": score.Analyze(body.Content),
	})
}

// fail maps a pipeline error to the HTTP taxonomy: invalid input is a
// client error, anything else an internal one. No partial result leaves
// the handler.
func (s *Server) fail(c *gin.Context, err error) {
	if pipeline.IsInvalidInput(err) {
		s.metrics.GenerationsTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	s.metrics.GenerationsTotal.WithLabelValues("error").Inc()
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
}

// record persists a finished generation when history is enabled.
func (s *Server) record(c *gin.Context, result types.GenerationResult) {
	if s.store == nil {
		return
	}
	if _, err := s.store.Record(c.Request.Context(), result); err != nil {
		s.logger.Error("recording generation", "error", err)
	}
}

// parseBatchTopic accepts either a bare topic string or an override object.
func parseBatchTopic(raw json.RawMessage) types.BatchTopic {
	var topic string
	if err := json.Unmarshal(raw, &topic); err == nil {
		return types.BatchTopic{Topic: topic}
	}
	var obj batchTopicBody
	if err := json.Unmarshal(raw, &obj); err == nil {
		return types.BatchTopic{
			Topic:    obj.Topic,
			Keywords: obj.Keywords,
			Tone:     types.Tone(obj.Tone),
			Length:   lengthFromJSON(obj.Length),
		}
	}
	return types.BatchTopic{}
}

// lengthFromJSON accepts a length that arrived as a JSON number or
// string. Unparsable input yields 0, which the pipeline replaces with the
// configured default.
func lengthFromJSON(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return types.ParseLength(s, 0)
	}
	return 0
}
