package game

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductByID(t *testing.T) {
	for _, id := range []ProductID{ProductSongQuiz, ProductWheel, ProductJeopardy} {
		p, ok := ProductByID(id)
		require.True(t, ok, "product %s", id)
		assert.Equal(t, id, p.ID)
		assert.NotEmpty(t, p.FlowSteps)
	}

	_, ok := ProductByID("chess")
	assert.False(t, ok)
}

func TestProductFlowSteps(t *testing.T) {
	sq, _ := ProductByID(ProductSongQuiz)
	var ids []string
	for _, s := range sq.FlowSteps {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"round_result", "streak_milestone", "game_result", "comeback_moment", "answer_steal"}, ids)

	step, ok := sq.FindStep("comeback_moment")
	require.True(t, ok)
	assert.False(t, step.HasSettings)

	_, ok = sq.FindStep("bankrupt")
	assert.False(t, ok, "flow steps belong to one product")
}

func TestScoresRelevant(t *testing.T) {
	relevant := []StepType{StepRoundResult, StepGameResult, StepStreakMilestone, StepComebackMoment, StepAnswerSteal}
	for _, st := range relevant {
		assert.True(t, ScoresRelevant(st), "%s", st)
	}
	for _, st := range []StepType{StepBankrupt, StepPuzzleSolve, StepDailyDouble, StepFinalJeopardy, StepScoreMomentum} {
		assert.False(t, ScoresRelevant(st), "%s", st)
	}
}

func TestLengthSpecs(t *testing.T) {
	cases := []struct {
		id     Length
		words  string
		tokens int
	}{
		{LengthShort, "1-3", 15},
		{LengthMedium, "3-8", 25},
		{LengthLong, "12-20", 50},
		{LengthBanter, "16-30", 75},
	}
	for _, tc := range cases {
		spec := LengthSpecFor(tc.id)
		assert.Equal(t, tc.words, spec.WordRange, "%s", tc.id)
		assert.Equal(t, tc.tokens, spec.MaxOutputTokens, "%s", tc.id)
	}

	assert.Equal(t, LengthMedium, LengthSpecFor("epic").ID, "unknown length falls back to medium")
}

func TestFilteredSettingsPerProduct(t *testing.T) {
	s := StepSettings{
		IsCorrect:   true,
		Performance: 4,
		StreakCount: 7,
		SpinValue:   2500,
		WagerAmount: 1800,
		Difficulty:  DifficultyHard,
	}

	sq := s.Filtered(ProductSongQuiz)
	assert.Equal(t, map[string]any{
		"isCorrect":   true,
		"performance": 4,
		"streakCount": 7,
		"difficulty":  "hard",
	}, sq)

	wheel := s.Filtered(ProductWheel)
	assert.Equal(t, map[string]any{
		"spinValue":  2500,
		"difficulty": "hard",
	}, wheel)
	assert.NotContains(t, wheel, "isCorrect")
	assert.NotContains(t, wheel, "wagerAmount")

	jeopardy := s.Filtered(ProductJeopardy)
	assert.Equal(t, map[string]any{
		"wagerAmount": 1800,
		"difficulty":  "hard",
	}, jeopardy)
	assert.NotContains(t, jeopardy, "spinValue")
	assert.NotContains(t, jeopardy, "streakCount")
}

func TestFilteredJSONRoundTrips(t *testing.T) {
	out := DefaultStepSettings().FilteredJSON(ProductJeopardy)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, float64(1000), decoded["wagerAmount"])
	assert.Equal(t, "medium", decoded["difficulty"])
	assert.Len(t, decoded, 2)
}

func TestFilteredUnknownProductEmpty(t *testing.T) {
	assert.Empty(t, DefaultStepSettings().Filtered("chess"))
	assert.Equal(t, "{}", DefaultStepSettings().FilteredJSON("chess"))
}

func TestBehaviorForAllProducts(t *testing.T) {
	for _, p := range Products {
		b, ok := BehaviorFor(p.ID)
		require.True(t, ok, "%s", p.ID)
		assert.NotEmpty(t, b.Lore)
		assert.Contains(t, b.Relevant, FieldDifficulty)
	}
}

func TestGenerateExamplesShapedBySettings(t *testing.T) {
	s := DefaultStepSettings()

	s.IsCorrect = false
	for _, ex := range GenerateExamples(ProductSongQuiz, "round_result", s) {
		assert.NotEmpty(t, ex.Text)
	}

	s.StreakCount = 9
	streaks := GenerateExamples(ProductSongQuiz, "streak_milestone", s)
	require.NotEmpty(t, streaks)
	assert.Contains(t, streaks[0].Text, "9")

	s.WagerAmount = 4200
	wagers := GenerateExamples(ProductJeopardy, "daily_double", s)
	require.NotEmpty(t, wagers)
	assert.Contains(t, wagers[0].Text, "$4200")

	s.SpinValue = 3500
	spins := GenerateExamples(ProductWheel, "big_money_spin", s)
	require.NotEmpty(t, spins)
	assert.Contains(t, spins[0].Text, "$3500")
}

func TestGenerateExamplesUnknownStepFallsBack(t *testing.T) {
	got := GenerateExamples(ProductWheel, "victory_lap", DefaultStepSettings())
	assert.NotEmpty(t, got, "unknown step uses the product default set")
}

func TestRandomExampleDrawsFromSet(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := DefaultStepSettings()

	set := GenerateExamples(ProductSongQuiz, "round_result", s)
	for i := 0; i < 50; i++ {
		ex := RandomExample(rng, ProductSongQuiz, "round_result", s)
		assert.Contains(t, set, ex)
	}
}
