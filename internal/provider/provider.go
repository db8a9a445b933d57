// Package provider abstracts the LLM backends behind one gateway. Backend
// request shapes, model lists, and parameter quirks stay in this package;
// callers only see Complete and the introspection operations.
package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("hostbox-provider")

// BackendID names one supported LLM API family.
type BackendID string

const (
	BackendOpenAI    BackendID = "openai"
	BackendAnthropic BackendID = "anthropic"
	BackendBedrock   BackendID = "bedrock"
)

// Model is one selectable model within a backend.
type Model struct {
	ID        string
	Name      string
	Backend   BackendID
	Cost      string
	MaxTokens int
}

// Result is what a completion call always returns. When Degraded is true,
// Text holds a descriptive failure message instead of model output so the
// caller still has something user-visible to show.
type Result struct {
	Text             string
	ProcessingTimeMs int64
	Degraded         bool
	TimedOut         bool
}

// backend is the per-API adapter surface. Adapters do no degradation or
// timing themselves; the gateway owns both.
type backend interface {
	Ready() bool
	CurrentModel() string
	Models() []Model
	SetModel(id string) bool
	ConfigurationHelp() string
	Complete(ctx context.Context, userPrompt, systemPrompt string, maxTokens int) (string, error)
}

// ErrNotReady is returned by calls that require a configured backend.
var ErrNotReady = errors.New("no LLM backend configured")

// Gateway routes completion requests to the selected backend. Construct
// with NewGateway; the zero value has no backends.
type Gateway struct {
	backends map[BackendID]backend
	order    []BackendID
	current  BackendID
	timeout  time.Duration
}

// NewGateway wires the backends from cfg. Backend selection follows
// cfg.Preferred when that backend has credentials, otherwise the first
// backend in registration order that does.
func NewGateway(cfg Config) *Gateway {
	g := &Gateway{
		backends: map[BackendID]backend{},
		timeout:  cfg.timeout(),
	}
	g.register(BackendOpenAI, newOpenAIBackend(cfg))
	g.register(BackendAnthropic, newAnthropicBackend(cfg))
	g.register(BackendBedrock, newBedrockBackend(cfg))

	if b, ok := g.backends[cfg.Preferred]; ok && b.Ready() {
		g.current = cfg.Preferred
		return g
	}
	for _, id := range g.order {
		if g.backends[id].Ready() {
			g.current = id
			break
		}
	}
	return g
}

func (g *Gateway) register(id BackendID, b backend) {
	g.backends[id] = b
	g.order = append(g.order, id)
}

// IsReady reports whether a backend with valid credentials is selected.
func (g *Gateway) IsReady() bool {
	b, ok := g.backends[g.current]
	return ok && b.Ready()
}

// CurrentBackend returns the active backend id, or "" when none is ready.
func (g *Gateway) CurrentBackend() BackendID {
	if !g.IsReady() {
		return ""
	}
	return g.current
}

// SetBackend switches to another backend. It only succeeds when that
// backend is ready; otherwise it reports false and keeps the current one.
func (g *Gateway) SetBackend(id BackendID) bool {
	b, ok := g.backends[id]
	if !ok || !b.Ready() {
		return false
	}
	g.current = id
	return true
}

// CurrentModel returns the active backend's selected model id.
func (g *Gateway) CurrentModel() string {
	b, ok := g.backends[g.current]
	if !ok {
		return "unknown"
	}
	return b.CurrentModel()
}

// ListModels returns the selectable models of the active backend. An
// unready gateway has no models to offer.
func (g *Gateway) ListModels() []Model {
	if !g.IsReady() {
		return nil
	}
	return g.backends[g.current].Models()
}

// SetModel selects a model on the active backend. Unknown model ids are
// rejected with false, never an error.
func (g *Gateway) SetModel(id string) bool {
	if !g.IsReady() {
		return false
	}
	return g.backends[g.current].SetModel(id)
}

// ConfigurationHelp returns setup instructions for every backend that is
// missing credentials.
func (g *Gateway) ConfigurationHelp() string {
	var help string
	for _, id := range g.order {
		b := g.backends[id]
		if b.Ready() {
			continue
		}
		if help != "" {
			help += "\n\n"
		}
		help += b.ConfigurationHelp()
	}
	if help == "" {
		help = "All backends are configured."
	}
	return help
}

// Complete runs one completion against the active backend. It never
// returns an error: a failed call degrades to a Result whose Text is a
// descriptive failure message, with TimedOut set when the deadline was the
// cause. ProcessingTimeMs is wall-clock time around the backend call in
// every outcome.
//
// Callers must check IsReady first; calling through unready is a contract
// violation the gateway still survives.
func (g *Gateway) Complete(ctx context.Context, userPrompt, systemPrompt string, maxTokens int) Result {
	start := time.Now()

	b, ok := g.backends[g.current]
	if !ok || !b.Ready() {
		return Result{
			Text:             ErrNotReady.Error(),
			ProcessingTimeMs: time.Since(start).Milliseconds(),
			Degraded:         true,
		}
	}

	ctx, span := tracer.Start(ctx, "llm.complete",
		trace.WithAttributes(
			attribute.String("backend", string(g.current)),
			attribute.String("model", b.CurrentModel()),
			attribute.Int("max_tokens", maxTokens),
		))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := b.Complete(ctx, userPrompt, systemPrompt, maxTokens)
	elapsed := time.Since(start).Milliseconds()
	span.SetAttributes(attribute.Int64("elapsed_ms", elapsed))
	if err != nil {
		timedOut := errors.Is(err, context.DeadlineExceeded)
		msg := fmt.Sprintf("Sorry, I had trouble generating a response. (%s: %v)", g.current, err)
		if timedOut {
			msg = fmt.Sprintf("Sorry, the %s backend timed out after %s.", g.current, g.timeout)
		}
		return Result{Text: msg, ProcessingTimeMs: elapsed, Degraded: true, TimedOut: timedOut}
	}
	if text == "" {
		return Result{
			Text:             "Sorry, I had trouble generating a response.",
			ProcessingTimeMs: elapsed,
			Degraded:         true,
		}
	}
	return Result{Text: text, ProcessingTimeMs: elapsed}
}
