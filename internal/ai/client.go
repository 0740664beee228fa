// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/wellspring/internal/logging"
	"github.com/tomtom215/wellspring/internal/metrics"
)

const (
	breakerName             = "ai-upstream"
	breakerFailureThreshold = 3
	breakerInterval         = 60 * time.Second
	breakerOpenTimeout      = 30 * time.Second

	defaultTimeout           = 10 * time.Second
	defaultRequestsPerMinute = 30
	outboundBurst            = 5

	// Response size caps. Analysis replies are small JSON; speech replies
	// are audio and get more room.
	maxAnalysisResponseBytes = 1 << 20
	maxSpeechResponseBytes   = 8 << 20

	speechModel = "tts-1"
	speechVoice = "nova"
)

// analysisPrompt instructs the upstream to answer with bare JSON matching
// the Analysis shape. Models still wrap replies in code fences often enough
// that the parser strips them anyway.
const analysisPrompt = `You are a supportive wellness companion reviewing a personal journal entry.
Respond with a single JSON object and nothing else, using exactly these keys:
"summary" (2-3 warm sentences reflecting the entry back),
"suggestions" (array of 2-3 short actionable strings),
"moodScore" (integer 1-10, 1 lowest),
"consolation" (one comforting sentence, empty string if the entry is not difficult),
"motivation" (one encouraging sentence, empty string if not fitting),
"knowledgeNugget" (one sentence of relevant wellbeing insight).
Do not include markdown, code fences, or commentary outside the JSON object.`

// Config controls the optional text-generation upstream. The zero value
// disables it, which leaves every analysis to the deterministic fallback.
type Config struct {
	Enabled           bool
	URL               string
	APIKey            string
	Model             string
	Timeout           time.Duration
	RequestsPerMinute int
	SpeechURL         string
}

// Client analyzes journal transcriptions. The remote upstream is consulted
// when configured and healthy; every other path lands on the deterministic
// fallback, so Analyze never fails.
//
// All methods are safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[Analysis]
	limiter    *rate.Limiter

	upstreamServed atomic.Int64
	fallbackServed atomic.Int64
}

// Stats reports how many analyses each path has served since startup.
type Stats struct {
	UpstreamServed int64 `json:"upstreamServed"`
	FallbackServed int64 `json:"fallbackServed"`
}

// NewClient builds a Client from the configuration. Zero or negative
// timeout and rate settings fall back to defaults.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RequestsPerMinute < 1 {
		cfg.RequestsPerMinute = defaultRequestsPerMinute
	}

	c := &Client{
		cfg: cfg,
		httpClient: &http.Client{
			// Per-request contexts carry the real deadline; this is a backstop
			Timeout: cfg.Timeout + 5*time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), outboundBurst),
	}

	settings := gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    breakerInterval,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("AI upstream circuit breaker state changed")
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String())
		},
	}
	c.breaker = gobreaker.NewCircuitBreaker[Analysis](settings)

	return c
}

// Available reports whether the remote upstream is configured and the
// breaker currently admits requests. Used by the readiness endpoint; a
// false value still leaves analysis fully functional via the fallback.
func (c *Client) Available() bool {
	if !c.cfg.Enabled || c.cfg.APIKey == "" {
		return false
	}
	return c.breaker.State() != gobreaker.StateOpen
}

// Stats returns the per-path serve counters.
func (c *Client) Stats() Stats {
	return Stats{
		UpstreamServed: c.upstreamServed.Load(),
		FallbackServed: c.fallbackServed.Load(),
	}
}

// Analyze produces an analysis for the transcription. The error surface is
// deliberately empty: upstream trouble is logged and counted, and the
// deterministic fallback answers instead.
func (c *Client) Analyze(ctx context.Context, transcription string) Analysis {
	if !c.cfg.Enabled || c.cfg.APIKey == "" {
		return c.serveFallback(ctx, transcription, "disabled", nil)
	}
	if !c.limiter.Allow() {
		return c.serveFallback(ctx, transcription, "rate_limited", nil)
	}

	start := time.Now()
	analysis, err := c.breaker.Execute(func() (Analysis, error) {
		return c.requestAnalysis(ctx, transcription)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return c.serveFallback(ctx, transcription, "breaker_open", err)
		}
		metrics.RecordAIUpstream(time.Since(start), err)
		return c.serveFallback(ctx, transcription, "upstream_error", err)
	}

	metrics.RecordAIUpstream(time.Since(start), nil)
	c.upstreamServed.Add(1)
	return analysis
}

func (c *Client) serveFallback(ctx context.Context, transcription, reason string, err error) Analysis {
	c.fallbackServed.Add(1)
	metrics.RecordAIFallback(reason)

	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("reason", reason).
			Msg("AI upstream unavailable, serving fallback analysis")
	} else {
		logging.Ctx(ctx).Debug().
			Str("reason", reason).
			Msg("Serving fallback analysis")
	}
	return Fallback(transcription)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) requestAnalysis(ctx context.Context, transcription string) (Analysis, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	payload, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: analysisPrompt},
			{Role: "user", Content: transcription},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return Analysis{}, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return Analysis{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Analysis{}, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAnalysisResponseBytes))
	if err != nil {
		return Analysis{}, fmt.Errorf("failed to read upstream response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Analysis{}, fmt.Errorf("upstream returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Analysis{}, fmt.Errorf("failed to parse upstream response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return Analysis{}, errors.New("upstream returned no choices")
	}

	content := stripCodeFences(parsed.Choices[0].Message.Content)
	if content == "" {
		return Analysis{}, errors.New("upstream returned empty content")
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return Analysis{}, fmt.Errorf("upstream content is not analysis JSON: %w", err)
	}
	if analysis.Summary == "" {
		return Analysis{}, errors.New("upstream analysis missing summary")
	}

	analysis.normalize()
	return analysis, nil
}

// SpeechResult carries either proxied audio bytes or the fallback signal
// telling the client to synthesize speech locally.
type SpeechResult struct {
	Audio       []byte
	ContentType string
	Fallback    bool
}

// Speak synthesizes speech for the text via the configured TTS upstream.
// Unlike Analyze, the fallback here is surfaced: fabricating audio is not
// possible, so the result says whether the client must speak for itself.
func (c *Client) Speak(ctx context.Context, text string) SpeechResult {
	if !c.cfg.Enabled || c.cfg.APIKey == "" || c.cfg.SpeechURL == "" {
		metrics.RecordSpeechRequest(false)
		return SpeechResult{Fallback: true}
	}
	if !c.limiter.Allow() {
		metrics.RecordSpeechRequest(false)
		return SpeechResult{Fallback: true}
	}

	audio, contentType, err := c.requestSpeech(ctx, text)
	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Msg("Speech upstream unavailable, signaling local synthesis")
		metrics.RecordSpeechRequest(false)
		return SpeechResult{Fallback: true}
	}

	metrics.RecordSpeechRequest(true)
	return SpeechResult{Audio: audio, ContentType: contentType}
}

type speechRequest struct {
	Model string `json:"model"`
	Voice string `json:"voice"`
	Input string `json:"input"`
}

func (c *Client) requestSpeech(ctx context.Context, text string) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	payload, err := json.Marshal(speechRequest{
		Model: speechModel,
		Voice: speechVoice,
		Input: text,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.SpeechURL, bytes.NewReader(payload))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("speech request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, "", fmt.Errorf("speech upstream returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	audio, err := io.ReadAll(io.LimitReader(resp.Body, maxSpeechResponseBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, "", errors.New("speech upstream returned no audio")
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/mpeg"
	}
	return audio, contentType, nil
}

// stripCodeFences unwraps a markdown-fenced block so fenced JSON replies
// still parse. Content without fences passes through untouched.
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	if i := strings.LastIndex(content, "```"); i >= 0 {
		content = content[:i]
	}
	return strings.TrimSpace(content)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
