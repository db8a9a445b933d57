// Package generate coordinates one host-response request: precondition
// checks, context snapshot, prompt or template path, and response
// metadata. It never persists results; retention is the caller's job.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/voxlab/hostbox/internal/game"
	"github.com/voxlab/hostbox/internal/personality"
	"github.com/voxlab/hostbox/internal/prompt"
	"github.com/voxlab/hostbox/internal/provider"
	"github.com/voxlab/hostbox/internal/sandbox"
)

// InputMode records how the scenario text reached the sandbox.
type InputMode string

const (
	InputText  InputMode = "text"
	InputVoice InputMode = "voice"
)

// Source tells which path produced the response text.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceTemplate Source = "template"
)

var (
	// ErrNotConfigured means no usable generator exists for this request.
	ErrNotConfigured = errors.New("no LLM backend configured and template fallback disabled")
	// ErrInvalidState means the sandbox state is missing a product or flow step.
	ErrInvalidState = errors.New("invalid state: product and flow step are required")
)

// StageError wraps a failure with the generation stage it happened in.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("[%s] %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Metadata describes the produced text.
type Metadata struct {
	ProcessingTimeMs int64 `json:"processingTime"`
	WordCount        int   `json:"wordCount"`
	// EstimatedSpeechDuration is seconds at an average speaking rate of
	// three words per second, rounded up. A heuristic, not a measurement.
	EstimatedSpeechDuration int `json:"estimatedSpeechDuration"`
}

// Response is the complete record of one generation.
type Response struct {
	ID        string               `json:"id"`
	Timestamp time.Time            `json:"timestamp"`
	Input     string               `json:"input"`
	InputMode InputMode            `json:"inputMode"`
	Context   prompt.Context       `json:"context"`
	Text      string               `json:"text"`
	Analysis  personality.Analysis `json:"personality"`
	Metadata  Metadata             `json:"metadata"`
	Source    Source               `json:"source"`
	Model     string               `json:"model,omitempty"`
	Degraded  bool                 `json:"degraded,omitempty"`
}

// gateway is the provider surface the orchestrator needs.
type gateway interface {
	IsReady() bool
	CurrentModel() string
	Complete(ctx context.Context, userPrompt, systemPrompt string, maxTokens int) provider.Result
}

// Orchestrator runs generation requests. Safe for sequential use; the rng
// is unsynchronized.
type Orchestrator struct {
	gateway  gateway
	rng      *rand.Rand
	logger   *slog.Logger
	fallback bool
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithoutFallback makes a missing LLM backend a hard error instead of
// degrading to the template path.
func WithoutFallback() Option {
	return func(o *Orchestrator) { o.fallback = false }
}

// New builds an orchestrator around the provider gateway. The rng drives
// template selection and transforms only; the LLM path does not consume it.
func New(gw gateway, rng *rand.Rand, logger *slog.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{gateway: gw, rng: rng, logger: logger, fallback: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Generate produces one host response for the scenario text. Precondition
// failures return before any network call is made.
func (o *Orchestrator) Generate(ctx context.Context, inputText string, mode InputMode, state *sandbox.State) (*Response, error) {
	llmReady := o.gateway != nil && o.gateway.IsReady()
	if !llmReady && !o.fallback {
		return nil, ErrNotConfigured
	}
	if state == nil || !state.Valid() {
		return nil, ErrInvalidState
	}

	snapshot := prompt.Context{
		Product:      state.Product,
		GameMode:     state.GameMode,
		Players:      append([]game.Player(nil), state.Players...),
		Length:       state.Length,
		FlowStep:     state.FlowStep,
		StepType:     state.StepType(),
		StepSettings: state.StepSettings,
		Personality:  state.Personality,
		Host:         state.Host,
	}
	analysis := personality.Analyze(snapshot.Personality)

	resp := &Response{
		ID:        ulid.Make().String(),
		Timestamp: time.Now(),
		Input:     inputText,
		InputMode: mode,
		Context:   snapshot,
		Analysis:  analysis,
	}

	if llmReady {
		p, err := prompt.Build(snapshot)
		if err != nil {
			return nil, &StageError{Stage: "prompt", Err: err}
		}
		result := o.gateway.Complete(ctx, "Game Scenario: "+inputText, p.System, p.MaxOutputTokens)
		resp.Text = result.Text
		resp.Source = SourceLLM
		resp.Model = o.gateway.CurrentModel()
		resp.Degraded = result.Degraded
		resp.Metadata = computeMetadata(result.Text, result.ProcessingTimeMs)
		o.log(resp)
		return resp, nil
	}

	start := time.Now()
	text := templateResponse(o.rng, snapshot)
	resp.Text = text
	resp.Source = SourceTemplate
	resp.Metadata = computeMetadata(text, time.Since(start).Milliseconds())
	o.log(resp)
	return resp, nil
}

func (o *Orchestrator) log(r *Response) {
	if o.logger == nil {
		return
	}
	o.logger.Info("generated host response",
		"id", r.ID,
		"source", r.Source,
		"model", r.Model,
		"product", r.Context.Product,
		"flow_step", r.Context.FlowStep,
		"words", r.Metadata.WordCount,
		"degraded", r.Degraded,
		"processing_ms", r.Metadata.ProcessingTimeMs,
	)
}

var pauseMarkupRe = regexp.MustCompile(`<break[^>]*/>`)

// computeMetadata counts spoken words, with inline pause markup stripped
// first so it never inflates the count.
func computeMetadata(text string, processingMs int64) Metadata {
	words := len(strings.Fields(pauseMarkupRe.ReplaceAllString(text, " ")))
	return Metadata{
		ProcessingTimeMs:        processingMs,
		WordCount:               words,
		EstimatedSpeechDuration: int(math.Ceil(float64(words) / 3)),
	}
}
