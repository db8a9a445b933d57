package personality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeToneBuckets(t *testing.T) {
	tests := []struct {
		value int
		want  Tone
	}{
		{1, TonePlayful},
		{2, TonePlayful},
		{3, ToneBalanced},
		{4, ToneSnarky},
		{5, ToneSnarky},
	}
	for _, tt := range tests {
		got := Analyze(Settings{PlayfulSnarky: tt.value, ExcitementStyle: 3, EncouragementStyle: 3})
		assert.Equal(t, tt.want, got.Tone, "playfulSnarky=%d", tt.value)
	}
}

func TestAnalyzeExcitementOrdinalMapping(t *testing.T) {
	want := map[int]Excitement{
		1: ExcitementMaximum,
		2: ExcitementHigh,
		3: ExcitementModerate,
		4: ExcitementLow,
		5: ExcitementMinimal,
	}
	for v, e := range want {
		got := Analyze(Settings{PlayfulSnarky: 3, ExcitementStyle: v, EncouragementStyle: 3})
		assert.Equal(t, e, got.Excitement, "excitementStyle=%d", v)
	}
}

func TestAnalyzeEncouragementOrdinalMapping(t *testing.T) {
	want := map[int]Encouragement{
		1: EncouragementMaxGentle,
		2: EncouragementGentle,
		3: EncouragementRealistic,
		4: EncouragementTough,
		5: EncouragementMaxTough,
	}
	for v, e := range want {
		got := Analyze(Settings{PlayfulSnarky: 3, ExcitementStyle: 3, EncouragementStyle: v})
		assert.Equal(t, e, got.Encouragement, "encouragementStyle=%d", v)
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	s := Settings{PlayfulSnarky: 4, ExcitementStyle: 2, EncouragementStyle: 5}
	assert.Equal(t, Analyze(s), Analyze(s))
}

func TestAnalyzeClampsOutOfRange(t *testing.T) {
	got := Analyze(Settings{PlayfulSnarky: 99, ExcitementStyle: -3, EncouragementStyle: 0})
	assert.Equal(t, ToneSnarky, got.Tone)
	assert.Equal(t, ExcitementMaximum, got.Excitement)
	assert.Equal(t, EncouragementMaxGentle, got.Encouragement)
}

func TestClamp(t *testing.T) {
	got := Settings{PlayfulSnarky: 0, ExcitementStyle: 6, EncouragementStyle: 3}.Clamp()
	assert.Equal(t, Settings{PlayfulSnarky: 1, ExcitementStyle: 5, EncouragementStyle: 3}, got)
}

func TestInstructionsContainSliderValues(t *testing.T) {
	s := Settings{PlayfulSnarky: 5, ExcitementStyle: 1, EncouragementStyle: 2}
	text := Instructions(s)
	require.NotEmpty(t, text)
	assert.Contains(t, text, "PLAYFUL ↔ SNARKY SETTING (5/5)")
	assert.Contains(t, text, "EXCITEMENT STYLE SETTING (1/5)")
	assert.Contains(t, text, "ENCOURAGEMENT STYLE SETTING (2/5)")
	assert.Contains(t, text, "MAXIMUM SNARK")
	assert.Contains(t, text, "MAXIMUM EXCITEMENT")
	assert.Contains(t, text, "HIGH GENTLENESS")
	assert.Contains(t, text, "PERSONALITY COMBINATION EFFECT:")
}

func TestCombinationEffectCorners(t *testing.T) {
	tests := []struct {
		name string
		s    Settings
		want string
	}{
		{"snarky composed", Settings{5, 5, 3}, "Dry, witty observations"},
		{"bubbly", Settings{1, 1, 3}, "Bubbly, over-the-top enthusiasm"},
		{"snarky demanding", Settings{5, 3, 5}, "Sharp, demanding commentary"},
		{"nurturing", Settings{1, 3, 1}, "Sweet, nurturing cheerleader"},
		{"generic", Settings{3, 3, 3}, "Blend all personality settings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, strings.Contains(Instructions(tt.s), tt.want))
		})
	}
}
