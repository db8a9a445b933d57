package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	ready bool
	model string
	text  string
	err   error
	delay time.Duration
	calls int
}

func (f *fakeBackend) Ready() bool          { return f.ready }
func (f *fakeBackend) CurrentModel() string { return f.model }
func (f *fakeBackend) Models() []Model {
	return []Model{{ID: f.model, Name: f.model, Backend: "fake"}}
}
func (f *fakeBackend) SetModel(id string) bool {
	if id != f.model {
		return false
	}
	return true
}
func (f *fakeBackend) ConfigurationHelp() string { return "configure the fake backend" }

func (f *fakeBackend) Complete(ctx context.Context, user, system string, maxTokens int) (string, error) {
	f.calls++
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delay):
		}
	}
	return f.text, f.err
}

func fakeGateway(f *fakeBackend, timeout time.Duration) *Gateway {
	g := &Gateway{backends: map[BackendID]backend{}, timeout: timeout}
	g.register("fake", f)
	if f.ready {
		g.current = "fake"
	}
	return g
}

func TestGatewayUnconfigured(t *testing.T) {
	g := NewGateway(Config{})

	assert.False(t, g.IsReady())
	assert.Empty(t, g.CurrentBackend())
	assert.Nil(t, g.ListModels())
	assert.False(t, g.SetModel("gpt-4o"))
}

func TestGatewayPrefersConfiguredBackend(t *testing.T) {
	g := NewGateway(Config{
		Preferred:    BackendAnthropic,
		OpenAIKey:    "sk-test",
		AnthropicKey: "sk-ant-api-test",
	})

	assert.Equal(t, BackendAnthropic, g.CurrentBackend())
}

func TestGatewayFallsBackToFirstReady(t *testing.T) {
	g := NewGateway(Config{
		Preferred:    BackendBedrock, // no AWS credentials in tests
		AnthropicKey: "sk-ant-api-test",
	})

	assert.Equal(t, BackendAnthropic, g.CurrentBackend())
}

func TestGatewayRejectsPlaceholderKey(t *testing.T) {
	g := NewGateway(Config{OpenAIKey: "your-openai-api-key-here"})
	assert.False(t, g.IsReady())
}

func TestSetBackendRequiresReady(t *testing.T) {
	g := NewGateway(Config{OpenAIKey: "sk-test"})

	assert.False(t, g.SetBackend(BackendAnthropic))
	assert.Equal(t, BackendOpenAI, g.CurrentBackend())
	assert.True(t, g.SetBackend(BackendOpenAI))
}

func TestCompleteSuccess(t *testing.T) {
	f := &fakeBackend{ready: true, model: "fake-1", text: "Nailed it!"}
	g := fakeGateway(f, time.Second)

	res := g.Complete(context.Background(), "scenario", "system", 25)

	assert.Equal(t, "Nailed it!", res.Text)
	assert.False(t, res.Degraded)
	assert.False(t, res.TimedOut)
	assert.GreaterOrEqual(t, res.ProcessingTimeMs, int64(0))
	assert.Equal(t, 1, f.calls)
}

func TestCompleteDegradesOnError(t *testing.T) {
	f := &fakeBackend{ready: true, model: "fake-1", err: errors.New("boom")}
	g := fakeGateway(f, time.Second)

	res := g.Complete(context.Background(), "scenario", "system", 25)

	assert.True(t, res.Degraded)
	assert.False(t, res.TimedOut)
	assert.Contains(t, res.Text, "trouble generating")
	assert.Contains(t, res.Text, "boom")
}

func TestCompleteDegradesOnEmptyText(t *testing.T) {
	f := &fakeBackend{ready: true, model: "fake-1", text: ""}
	g := fakeGateway(f, time.Second)

	res := g.Complete(context.Background(), "scenario", "system", 25)

	assert.True(t, res.Degraded)
	assert.NotEmpty(t, res.Text)
}

func TestCompleteClassifiesTimeout(t *testing.T) {
	f := &fakeBackend{ready: true, model: "fake-1", text: "late", delay: 200 * time.Millisecond}
	g := fakeGateway(f, 10*time.Millisecond)

	res := g.Complete(context.Background(), "scenario", "system", 25)

	assert.True(t, res.Degraded)
	assert.True(t, res.TimedOut)
	assert.Contains(t, res.Text, "timed out")
	assert.GreaterOrEqual(t, res.ProcessingTimeMs, int64(10))
}

func TestCompleteUnreadySurvives(t *testing.T) {
	g := NewGateway(Config{})

	res := g.Complete(context.Background(), "scenario", "system", 25)

	assert.True(t, res.Degraded)
	assert.Equal(t, ErrNotReady.Error(), res.Text)
}

func TestOpenAINewestTierQuirk(t *testing.T) {
	assert.True(t, newestTierModel("gpt-5"))
	assert.True(t, newestTierModel("gpt-5-mini"))
	assert.True(t, newestTierModel("o1-preview"))
	assert.True(t, newestTierModel("o3-mini"))
	assert.False(t, newestTierModel("gpt-4o"))
	assert.False(t, newestTierModel("gpt-3.5-turbo"))
}

func TestBackendSetModel(t *testing.T) {
	b := newOpenAIBackend(Config{OpenAIKey: "sk-test"})

	require.True(t, b.Ready())
	assert.Equal(t, defaultOpenAIModel, b.CurrentModel())
	assert.True(t, b.SetModel("gpt-4o"))
	assert.Equal(t, "gpt-4o", b.CurrentModel())
	assert.False(t, b.SetModel("gpt-6-ultra"))
	assert.Equal(t, "gpt-4o", b.CurrentModel(), "rejected model change must not stick")
}

func TestConfigurationHelpListsUnready(t *testing.T) {
	g := NewGateway(Config{OpenAIKey: "sk-test"})

	help := g.ConfigurationHelp()
	assert.Contains(t, help, "ANTHROPIC_API_KEY")
	assert.Contains(t, help, "AWS_REGION")
	assert.NotContains(t, help, "OPENAI_API_KEY")
}

func TestConfigTimeoutDefault(t *testing.T) {
	assert.Equal(t, defaultTimeout, Config{}.timeout())
	assert.Equal(t, time.Minute, Config{Timeout: time.Minute}.timeout())
}
