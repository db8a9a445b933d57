// Package speech turns generated host text into playable audio. Failures
// are non-fatal by contract: Synthesize always returns a Result the UI can
// show, never a panic or a bare error.
package speech

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("hostbox-speech")

// Prosody carries the voice-settings knobs of a synthesis request.
type Prosody struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

// DefaultProsody matches the sandbox defaults.
func DefaultProsody() Prosody {
	return Prosody{Stability: 0.5, SimilarityBoost: 0.8, Style: 0.5, UseSpeakerBoost: true}
}

// Options is one synthesis request. An empty VoiceID selects the default
// voice, and a zero-value Prosody selects DefaultProsody. All-zero prosody
// is not expressible; the knobs only make sense relative to the defaults.
type Options struct {
	Text    string
	VoiceID string
	Prosody Prosody
}

// Result is the outcome of a synthesis request. When Success is false,
// Error carries a user-facing message and Audio is nil. A non-nil Audio
// must be released by the caller once playback is done.
type Result struct {
	Audio               *Handle
	EstimatedDurationMs int64
	Success             bool
	Error               string
}

// Synthesizer is one TTS backend.
type Synthesizer interface {
	Name() string
	Ready() bool
	Synthesize(ctx context.Context, text, voiceID string, p Prosody) ([]byte, error)
	ConfigurationHelp() string
}

// Voice is one catalog entry.
type Voice struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Gender string `json:"gender,omitempty"`
}

// Voices is the static host-voice catalog; the first entry is the default.
var Voices = []Voice{
	{ID: "h2dQOVyUfIDqY2whPOMo", Name: "Nayva", Gender: "Female"},
	{ID: "yj30vwTGJxSHezdAGsv9", Name: "Jessa", Gender: "Female"},
	{ID: "TbMNBJ27fH2U0VgpSNko", Name: "Lori", Gender: "Female"},
	{ID: "EXAVITQu4vr4xnSDxMaL", Name: "Sarah", Gender: "Female"},
	{ID: "pNInz6obpgDQGcFmaJgB", Name: "Adam", Gender: "Male"},
}

// DefaultVoice returns the catalog default.
func DefaultVoice() Voice { return Voices[0] }

// VoiceByID resolves a catalog entry, or false.
func VoiceByID(id string) (Voice, bool) {
	for _, v := range Voices {
		if v.ID == id {
			return v, true
		}
	}
	return Voice{}, false
}

const notConfiguredMessage = "TTS API key not configured"

// Gateway fronts one Synthesizer with text enhancement, duration
// estimation, and temp-file audio handles.
type Gateway struct {
	synth  Synthesizer
	logger *slog.Logger
}

// NewGateway wraps a synthesizer. logger may be nil.
func NewGateway(s Synthesizer, logger *slog.Logger) *Gateway {
	return &Gateway{synth: s, logger: logger}
}

// IsReady reports whether the backend has credentials.
func (g *Gateway) IsReady() bool {
	return g.synth != nil && g.synth.Ready()
}

// ConfigurationHelp returns the backend's setup instructions.
func (g *Gateway) ConfigurationHelp() string {
	if g.synth == nil {
		return notConfiguredMessage
	}
	return g.synth.ConfigurationHelp()
}

// Synthesize runs one request end to end. The estimated duration is
// derived from the caller's original text at three words per second; the
// enhanced text is what goes over the wire.
func (g *Gateway) Synthesize(ctx context.Context, opts Options) Result {
	if !g.IsReady() {
		return Result{Success: false, Error: notConfiguredMessage}
	}

	voiceID := opts.VoiceID
	if voiceID == "" {
		voiceID = DefaultVoice().ID
	}
	if opts.Prosody == (Prosody{}) {
		opts.Prosody = DefaultProsody()
	}

	ctx, span := tracer.Start(ctx, "tts.synthesize",
		trace.WithAttributes(
			attribute.String("backend", g.synth.Name()),
			attribute.String("voice", voiceID),
		))
	defer span.End()

	data, err := g.synth.Synthesize(ctx, EnhanceText(opts.Text), voiceID, opts.Prosody)
	if err != nil {
		msg := friendlyError(err)
		if g.logger != nil {
			g.logger.Warn("speech synthesis failed", "voice", voiceID, "error", err)
		}
		return Result{Success: false, Error: msg}
	}

	handle, err := newHandle(data)
	if err != nil {
		return Result{Success: false, Error: fmt.Sprintf("store audio: %v", err)}
	}

	words := len(strings.Fields(opts.Text))
	return Result{
		Audio:               handle,
		EstimatedDurationMs: int64(math.Ceil(float64(words)/3)) * 1000,
		Success:             true,
	}
}

// friendlyError rewrites transport-level failures into guidance; backend
// API errors pass through as-is.
func friendlyError(err error) string {
	var uerr *url.Error
	if errors.As(err, &uerr) || strings.Contains(err.Error(), "CORS") {
		return "Network error: Unable to reach the TTS API. This may be due to cross-origin restrictions in development mode. Consider using a proxy server for production."
	}
	return err.Error()
}
