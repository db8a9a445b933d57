package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxlab/hostbox/internal/game"
	"github.com/voxlab/hostbox/internal/host"
	"github.com/voxlab/hostbox/internal/personality"
)

func testContext() Context {
	return Context{
		Product:  game.ProductSongQuiz,
		GameMode: game.ModeSingle,
		Players: []game.Player{
			{ID: "p1", Name: "Charlie", Score: 1200},
		},
		Length:       game.LengthMedium,
		FlowStep:     "round_result",
		StepType:     game.StepRoundResult,
		StepSettings: game.DefaultStepSettings(),
		Personality:  personality.DefaultSettings(),
		Host:         host.Selected{ID: "riley", Name: "Riley"},
	}
}

func TestBuildDeterministic(t *testing.T) {
	ctx := testContext()

	a, err := Build(ctx)
	require.NoError(t, err)
	b, err := Build(ctx)
	require.NoError(t, err)

	assert.Equal(t, a, b, "equal snapshots produce byte-equal prompts")
}

func TestBuildUnknownHostFails(t *testing.T) {
	ctx := testContext()
	ctx.Host = host.Selected{ID: "nonexistent", Name: "Nobody"}

	_, err := Build(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestBuildSectionOrder(t *testing.T) {
	p, err := Build(testContext())
	require.NoError(t, err)

	sections := []string{
		"You are Riley",
		"PERSONALITY PILLARS:",
		"PERSONALITY PROFILE:",
		"GAME CONTEXT:",
		"SONGQUIZ CONTEXT:",
		"ADAPT, DON'T COPY",
		"HARD CONSTRAINTS:",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(p.System, s)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", s)
		assert.Greater(t, idx, last, "section %q out of order", s)
		last = idx
	}
}

func TestBuildWordRangePerLength(t *testing.T) {
	cases := []struct {
		length game.Length
		words  string
		tokens int
	}{
		{game.LengthShort, "EXACTLY 1-3 spoken words", 15},
		{game.LengthMedium, "EXACTLY 3-8 spoken words", 25},
		{game.LengthLong, "EXACTLY 12-20 spoken words", 50},
		{game.LengthBanter, "EXACTLY 16-30 spoken words", 75},
	}
	for _, tc := range cases {
		ctx := testContext()
		ctx.Length = tc.length

		p, err := Build(ctx)
		require.NoError(t, err, "%s", tc.length)
		assert.Contains(t, p.System, tc.words, "%s", tc.length)
		assert.Equal(t, tc.tokens, p.MaxOutputTokens, "%s", tc.length)
	}
}

func TestBuildRosterScores(t *testing.T) {
	ctx := testContext()
	ctx.Players = []game.Player{
		{ID: "p1", Name: "Ada", Score: 200},
		{ID: "p2", Name: "Maya", Score: 350},
	}

	ctx.StepType = game.StepRoundResult
	p, err := Build(ctx)
	require.NoError(t, err)
	assert.Contains(t, p.System, "Ada (200 points), Maya (350 points)")

	ctx.Product = game.ProductWheel
	ctx.FlowStep = "bankrupt"
	ctx.StepType = game.StepBankrupt
	p, err = Build(ctx)
	require.NoError(t, err)
	assert.Contains(t, p.System, "Ada, Maya")
	assert.NotContains(t, p.System, "Ada (200 points)")
}

func TestBuildFiltersSettingsPerProduct(t *testing.T) {
	ctx := testContext()
	ctx.Product = game.ProductWheel
	ctx.FlowStep = "big_money_spin"
	ctx.StepType = game.StepBigMoneySpin
	ctx.StepSettings.SpinValue = 2500
	ctx.StepSettings.WagerAmount = 9999

	p, err := Build(ctx)
	require.NoError(t, err)
	assert.Contains(t, p.System, `"spinValue":2500`)
	assert.NotContains(t, p.System, "wagerAmount", "jeopardy-only field leaks into wheel prompt")
	assert.NotContains(t, p.System, "isCorrect", "songquiz-only field leaks into wheel prompt")
}

func TestBuildFlowStepSpaces(t *testing.T) {
	ctx := testContext()
	ctx.FlowStep = "streak_milestone"
	ctx.StepType = game.StepStreakMilestone

	p, err := Build(ctx)
	require.NoError(t, err)
	assert.Contains(t, p.System, "Current Flow Step: streak milestone")
}

func TestBuildExamplesMatchLength(t *testing.T) {
	riley, err := host.ByID("riley")
	require.NoError(t, err)

	ctx := testContext()
	ctx.Length = game.LengthShort
	p, err := Build(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, riley.Short.Celebratory)
	assert.Contains(t, p.System, riley.Short.Celebratory[0])

	ctx.Length = game.LengthBanter
	p, err = Build(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, riley.Banter.Musical)
	assert.Contains(t, p.System, riley.Banter.Musical[0])
}

func TestBuildIncludesVoiceGuidelines(t *testing.T) {
	riley, err := host.ByID("riley")
	require.NoError(t, err)

	p, err := Build(testContext())
	require.NoError(t, err)
	assert.Contains(t, p.System, riley.VoiceGuidelines)
}

func TestBuildIncludesSliderInstructions(t *testing.T) {
	ctx := testContext()
	ctx.Personality = personality.Settings{PlayfulSnarky: 5, ExcitementStyle: 1, EncouragementStyle: 3}

	p, err := Build(ctx)
	require.NoError(t, err)
	assert.Contains(t, p.System, "PLAYFUL ↔ SNARKY SETTING (5/5)")
	assert.Contains(t, p.System, "EXCITEMENT STYLE SETTING (1/5)")
}
