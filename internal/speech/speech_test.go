package speech

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSynth struct {
	ready bool
	data  []byte
	err   error

	lastText  string
	lastVoice string
	lastProso Prosody
}

func (f *fakeSynth) Name() string               { return "fake" }
func (f *fakeSynth) Ready() bool                { return f.ready }
func (f *fakeSynth) ConfigurationHelp() string  { return "set FAKE_API_KEY" }
func (f *fakeSynth) Synthesize(ctx context.Context, text, voiceID string, p Prosody) ([]byte, error) {
	f.lastText = text
	f.lastVoice = voiceID
	f.lastProso = p
	return f.data, f.err
}

func TestEnhanceTextSentenceBreaks(t *testing.T) {
	got := EnhanceText("Nice work! You nailed that one.")
	assert.Equal(t, `Nice work! <break time="0.4s" /> You nailed that one.`, got)
}

func TestEnhanceTextSingleSentenceUntouched(t *testing.T) {
	assert.Equal(t, "Nailed it!", EnhanceText("Nailed it!"))
}

func TestEnhanceTextEllipsisPause(t *testing.T) {
	got := EnhanceText("Well...That was something")
	assert.Equal(t, `Well... <break time="0.3s" /> That was something`, got)
}

func TestEnhanceTextEllipsisWithSpaceUsesSentenceBreak(t *testing.T) {
	got := EnhanceText("Well... That was something")
	assert.Equal(t, `Well... <break time="0.4s" /> That was something`, got)
}

func TestEnhanceTextCapsExclamationRuns(t *testing.T) {
	assert.Equal(t, "Wow!!", EnhanceText("Wow!!!!!"))
	assert.Equal(t, "Wow!!", EnhanceText("Wow!!"))
}

func TestEnhanceTextIdempotent(t *testing.T) {
	inputs := []string{
		"Nice work! You nailed that one. Keep going!",
		"Well... That was something!!!",
		`Already marked. <break time="0.4s" /> Stays as is.`,
		"Single sentence stays plain",
	}
	for _, in := range inputs {
		once := EnhanceText(in)
		assert.Equal(t, once, EnhanceText(once), "double enhancement changed %q", in)
	}
}

func TestEnhanceTextPreservesExistingMarkup(t *testing.T) {
	marked := `First!!! <break time="0.2s" /> Second sentence. Third one.`
	assert.Equal(t, marked, EnhanceText(marked), "marked-up text passes through byte-identical")
}

func TestSynthesizeNotConfigured(t *testing.T) {
	g := NewGateway(&fakeSynth{ready: false}, nil)

	res := g.Synthesize(context.Background(), Options{Text: "Hello"})
	assert.False(t, res.Success)
	assert.Equal(t, notConfiguredMessage, res.Error)
	assert.Nil(t, res.Audio)
}

func TestSynthesizeSuccess(t *testing.T) {
	f := &fakeSynth{ready: true, data: []byte("mp3-bytes")}
	g := NewGateway(f, nil)

	res := g.Synthesize(context.Background(), Options{Text: "one two three four"})
	require.True(t, res.Success, res.Error)
	require.NotNil(t, res.Audio)
	defer res.Audio.Release()

	assert.Equal(t, int64(2000), res.EstimatedDurationMs, "ceil(4/3) seconds in ms")
	assert.Equal(t, DefaultVoice().ID, f.lastVoice, "empty voice id selects default")
	assert.Equal(t, DefaultProsody(), f.lastProso)
	assert.FileExists(t, res.Audio.Path())
}

func TestSynthesizeExplicitProsodyPassesThrough(t *testing.T) {
	f := &fakeSynth{ready: true, data: []byte("x")}
	g := NewGateway(f, nil)

	custom := Prosody{Stability: 0.9, SimilarityBoost: 0.1, Style: 0.2}
	res := g.Synthesize(context.Background(), Options{Text: "Hi", Prosody: custom})
	require.True(t, res.Success, res.Error)
	defer res.Audio.Release()

	assert.Equal(t, custom, f.lastProso, "non-zero prosody is never rewritten")
}

func TestSynthesizeSendsEnhancedText(t *testing.T) {
	f := &fakeSynth{ready: true, data: []byte("x")}
	g := NewGateway(f, nil)

	res := g.Synthesize(context.Background(), Options{Text: "Nice work! You nailed that one."})
	require.True(t, res.Success)
	defer res.Audio.Release()

	assert.Contains(t, f.lastText, "<break", "wire text carries pause markup")
}

func TestSynthesizeBackendError(t *testing.T) {
	f := &fakeSynth{ready: true, err: errors.New("ElevenLabs API error: 401 - bad key")}
	g := NewGateway(f, nil)

	res := g.Synthesize(context.Background(), Options{Text: "Hello"})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "401")
}

func TestSynthesizeTransportErrorFriendly(t *testing.T) {
	f := &fakeSynth{ready: true, err: &url.Error{Op: "Post", URL: elevenLabsBaseURL, Err: errors.New("connection refused")}}
	g := NewGateway(f, nil)

	res := g.Synthesize(context.Background(), Options{Text: "Hello"})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "cross-origin")
	assert.Contains(t, res.Error, "proxy")
}

func TestHandleRelease(t *testing.T) {
	h, err := newHandle([]byte("audio"))
	require.NoError(t, err)

	path := h.Path()
	require.FileExists(t, path)
	assert.Equal(t, 5, h.Size())

	require.NoError(t, h.Release())
	assert.NoFileExists(t, path)
	assert.Empty(t, h.Path())
	assert.NoError(t, h.Release(), "double release is a no-op")
}

func TestVoiceCatalog(t *testing.T) {
	assert.Equal(t, "Nayva", DefaultVoice().Name)

	v, ok := VoiceByID("TbMNBJ27fH2U0VgpSNko")
	require.True(t, ok)
	assert.Equal(t, "Lori", v.Name)

	_, ok = VoiceByID("nope")
	assert.False(t, ok)

	for _, v := range Voices {
		assert.NotEmpty(t, v.ID)
		assert.NotEmpty(t, v.Gender)
	}
}

func TestElevenLabsReadiness(t *testing.T) {
	assert.False(t, NewElevenLabs("").Ready())
	assert.False(t, NewElevenLabs("your-elevenlabs-api-key-here").Ready())
	assert.True(t, NewElevenLabs("el-key").Ready())
}
