package generate

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxlab/hostbox/internal/game"
	"github.com/voxlab/hostbox/internal/provider"
	"github.com/voxlab/hostbox/internal/sandbox"
)

type mockGateway struct {
	ready  bool
	model  string
	result provider.Result
	calls  int

	lastUser   string
	lastSystem string
	lastTokens int
}

func (m *mockGateway) IsReady() bool        { return m.ready }
func (m *mockGateway) CurrentModel() string { return m.model }

func (m *mockGateway) Complete(ctx context.Context, user, system string, maxTokens int) provider.Result {
	m.calls++
	m.lastUser = user
	m.lastSystem = system
	m.lastTokens = maxTokens
	return m.result
}

func newTestOrchestrator(gw gateway, opts ...Option) *Orchestrator {
	return New(gw, rand.New(rand.NewSource(7)), nil, opts...)
}

func TestGenerateLLMPath(t *testing.T) {
	gw := &mockGateway{
		ready:  true,
		model:  "gpt-4o-mini",
		result: provider.Result{Text: "Nailed it, Charlie!", ProcessingTimeMs: 42},
	}
	o := newTestOrchestrator(gw)

	resp, err := o.Generate(context.Background(), "Charlie got it right", InputText, sandbox.NewState())
	require.NoError(t, err)

	assert.Equal(t, SourceLLM, resp.Source)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
	assert.Equal(t, "Nailed it, Charlie!", resp.Text)
	assert.Equal(t, int64(42), resp.Metadata.ProcessingTimeMs)
	assert.Equal(t, 3, resp.Metadata.WordCount)
	assert.Equal(t, 1, resp.Metadata.EstimatedSpeechDuration)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 1, gw.calls)

	assert.Equal(t, "Game Scenario: Charlie got it right", gw.lastUser)
	assert.Contains(t, gw.lastSystem, "You are Riley")
	assert.Equal(t, 25, gw.lastTokens, "medium bucket token ceiling")
}

func TestGenerateTokenCeilingTracksLength(t *testing.T) {
	gw := &mockGateway{ready: true, model: "m", result: provider.Result{Text: "ok"}}
	o := newTestOrchestrator(gw)

	state := sandbox.NewState()
	state.Length = game.LengthBanter

	_, err := o.Generate(context.Background(), "scenario", InputText, state)
	require.NoError(t, err)
	assert.Equal(t, 75, gw.lastTokens)
}

func TestGenerateInvalidStateBeforeNetwork(t *testing.T) {
	gw := &mockGateway{ready: true, model: "m", result: provider.Result{Text: "ok"}}
	o := newTestOrchestrator(gw)

	state := sandbox.NewState()
	state.FlowStep = ""

	_, err := o.Generate(context.Background(), "scenario", InputText, state)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Zero(t, gw.calls, "no gateway call on invalid state")

	_, err = o.Generate(context.Background(), "scenario", InputText, nil)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Zero(t, gw.calls)
}

func TestGenerateNotConfigured(t *testing.T) {
	gw := &mockGateway{ready: false}
	o := newTestOrchestrator(gw, WithoutFallback())

	_, err := o.Generate(context.Background(), "scenario", InputText, sandbox.NewState())
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Zero(t, gw.calls)
}

func TestGenerateTemplateFallback(t *testing.T) {
	gw := &mockGateway{ready: false}
	o := newTestOrchestrator(gw)

	resp, err := o.Generate(context.Background(), "scenario", InputVoice, sandbox.NewState())
	require.NoError(t, err)

	assert.Equal(t, SourceTemplate, resp.Source)
	assert.NotEmpty(t, resp.Text)
	assert.Empty(t, resp.Model)
	assert.Zero(t, gw.calls)
	assert.Equal(t, InputVoice, resp.InputMode)
	assert.Greater(t, resp.Metadata.WordCount, 0)
}

func TestGenerateUnknownHostAborts(t *testing.T) {
	gw := &mockGateway{ready: true, model: "m", result: provider.Result{Text: "ok"}}
	o := newTestOrchestrator(gw)

	state := sandbox.NewState()
	state.Host.ID = "nonexistent"

	_, err := o.Generate(context.Background(), "scenario", InputText, state)
	require.Error(t, err)
	var se *StageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "prompt", se.Stage)
	assert.Zero(t, gw.calls, "prompt build failure aborts before the network call")
}

func TestGenerateDegradedPropagates(t *testing.T) {
	gw := &mockGateway{
		ready:  true,
		model:  "m",
		result: provider.Result{Text: "Sorry, the backend timed out.", ProcessingTimeMs: 30000, Degraded: true, TimedOut: true},
	}
	o := newTestOrchestrator(gw)

	resp, err := o.Generate(context.Background(), "scenario", InputText, sandbox.NewState())
	require.NoError(t, err, "degraded completion still yields a response record")
	assert.True(t, resp.Degraded)
	assert.NotEmpty(t, resp.Text)
}

func TestComputeMetadataStripsPauseMarkup(t *testing.T) {
	m := computeMetadata(`Nice!! <break time="0.4s" /> Great!!`, 10)
	assert.Equal(t, 2, m.WordCount)
	assert.Equal(t, 1, m.EstimatedSpeechDuration)
	assert.Equal(t, int64(10), m.ProcessingTimeMs)

	m = computeMetadata("one two three four", 0)
	assert.Equal(t, 4, m.WordCount)
	assert.Equal(t, 2, m.EstimatedSpeechDuration, "ceil(4/3)")

	m = computeMetadata("", 5)
	assert.Zero(t, m.WordCount)
	assert.Zero(t, m.EstimatedSpeechDuration)
}

func TestTemplateResponsePerStep(t *testing.T) {
	state := sandbox.NewState()

	// streak placeholder filled from settings
	require.NoError(t, state.SetFlowStep("streak_milestone"))
	state.StepSettings.StreakCount = 7
	o := newTestOrchestrator(&mockGateway{})
	resp, err := o.Generate(context.Background(), "streak", InputText, state)
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "7")

	// wheel big money spin fills the amount
	require.NoError(t, state.SetProduct(game.ProductWheel))
	require.NoError(t, state.SetFlowStep("big_money_spin"))
	state.StepSettings.SpinValue = 2500
	resp, err = o.Generate(context.Background(), "spin", InputText, state)
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "2500")
}

func TestTemplateShortLengthTruncates(t *testing.T) {
	o := newTestOrchestrator(&mockGateway{})
	state := sandbox.NewState()
	state.Length = game.LengthShort

	for i := 0; i < 20; i++ {
		resp, err := o.Generate(context.Background(), "scenario", InputText, state)
		require.NoError(t, err)
		assert.NotContains(t, resp.Text[:len(resp.Text)-1], ".",
			"short responses keep only the first sentence")
	}
}
