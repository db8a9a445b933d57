package personality

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyIntensityNeutralSettingsLeaveTextAlone(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for seed := int64(0); seed < 20; seed++ {
		rng.Seed(seed)
		got := ApplyIntensity("Nice work on that one.", Settings{3, 3, 3}, rng)
		assert.Equal(t, "Nice work on that one.", got)
	}
}

func TestApplyIntensityMaximalPlayful(t *testing.T) {
	// {1,1,1}: tier-1 playful word swap, forced "!!", never a tough-love tail.
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		got := ApplyIntensity("Good job.", Settings{1, 1, 1}, rng)

		assert.NotContains(t, got, "Good", "seed %d: neutral word should be replaced", seed)
		assert.Contains(t, got, "!!", "seed %d", seed)
		for _, tail := range challengingTails {
			assert.NotContains(t, got, tail, "seed %d", seed)
		}

		var swapped bool
		for _, set := range playfulWordSets[1] {
			for _, w := range set {
				if strings.Contains(got, w) {
					swapped = true
				}
			}
		}
		assert.True(t, swapped, "seed %d: expected a tier-1 playful word in %q", seed, got)
	}
}

func TestApplyIntensitySnarkyReplacesNeutralWords(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		got := ApplyIntensity("Great answer.", Settings{5, 3, 3}, rng)
		assert.NotContains(t, got, "Great", "seed %d", seed)
	}
}

func TestApplyExcitementSelectiveStripsBangs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	got := ApplyIntensity("Wow!! Nice try!", Settings{3, 4, 3}, rng)
	assert.NotContains(t, got, "!")
}

func TestApplyExcitementSelectiveKeywordTail(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	got := ApplyIntensity("What a streak!", Settings{3, 4, 3}, rng)
	assert.Contains(t, got, "Now THAT was worth getting excited about!")
}

func TestApplyExcitementComposedSubstitutesMeasuredWords(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	got := ApplyIntensity("Amazing! Fantastic work! 🎉", Settings{3, 5, 3}, rng)
	assert.NotContains(t, got, "Amazing")
	assert.NotContains(t, got, "Fantastic")
	assert.NotContains(t, got, "🎉")
	assert.NotContains(t, got, "!")
	assert.Contains(t, got, "Adequate")
	assert.Contains(t, got, "Satisfactory")
}

func TestApplyEncouragementGentleAppendsOnFailureCue(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		got := ApplyIntensity("That was wrong, sadly.", Settings{3, 3, 1}, rng)
		var found bool
		for _, tail := range gentleTails {
			if strings.Contains(got, tail) {
				found = true
			}
		}
		assert.True(t, found, "seed %d: %q", seed, got)
	}
}

func TestApplyEncouragementGentleSkipsOnSuccess(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	got := ApplyIntensity("You got it.", Settings{3, 3, 1}, rng)
	assert.Equal(t, "You got it.", got)
}

func TestApplyEncouragementSofteningSubstitutions(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	got := ApplyIntensity("You missed that and got it wrong.", Settings{3, 3, 2}, rng)
	assert.NotContains(t, got, "missed")
	assert.NotContains(t, got, "wrong.")
	assert.Contains(t, got, "didn't get that one")
	assert.Contains(t, got, "not quite right")
}

func TestApplyEncouragementToughAppendsChallenge(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		got := ApplyIntensity("You missed it.", Settings{3, 3, 5}, rng)
		var found bool
		for _, tail := range challengingTails {
			if strings.Contains(got, tail) {
				found = true
			}
		}
		assert.True(t, found, "seed %d: %q", seed, got)
	}
}

func TestForceDoubleBang(t *testing.T) {
	assert.Equal(t, "Nailed it!!", forceDoubleBang("Nailed it."))
	assert.Equal(t, "Nailed it!!", forceDoubleBang("Nailed it!"))
	assert.Equal(t, "No punctuation", forceDoubleBang("No punctuation"))
}
