package generate

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/voxlab/hostbox/internal/game"
	"github.com/voxlab/hostbox/internal/personality"
	"github.com/voxlab/hostbox/internal/prompt"
)

// Base utterances for the offline path, keyed by product and situation.
// The personality transform reshapes these after selection, so they stay
// deliberately neutral here.
var templates = map[game.ProductID]map[string][]string{
	game.ProductSongQuiz: {
		"correct": {
			"Nice work! You nailed that one!",
			"Excellent! You've got great musical taste!",
			"Perfect! That was spot on!",
		},
		"incorrect": {
			"Oops! Not quite the one. Don't worry, happens to the best of us!",
			"Not quite! You'll get the next one!",
			"Close, but not this time. Keep your ears open!",
		},
		"streak": {
			"You're on fire! [count] songs in a row!",
			"Incredible streak! [count] correct answers!",
			"Wow! [count] songs and counting!",
		},
	},
	game.ProductWheel: {
		"solve": {
			"Amazing solve! You figured that out with minimal letters!",
			"Incredible! That was a tough puzzle to crack!",
			"Outstanding puzzle solving skills!",
		},
		"bankrupt": {
			"Oh no! Bankrupt! That's gotta sting, but don't give up!",
			"Ouch! Hit the bankrupt, but there's still time to bounce back!",
			"Bankrupt! But hey, that's part of the game!",
		},
		"bigSpin": {
			"YES! Big money spin! $[amount] on the board!",
			"Fantastic spin! $[amount] is yours!",
			"What a spin! $[amount] - that's serious money!",
		},
	},
	game.ProductJeopardy: {
		"correct": {
			"That's right! Well done!",
			"Correct! You know your stuff!",
			"Yes! Great knowledge there!",
		},
		"incorrect": {
			"Not quite. Good try though!",
			"Oops! That wasn't what we were looking for.",
			"No, but good try!",
		},
		"dailyDouble": {
			"Daily Double! How much are you wagering?",
			"You found the Daily Double! What's your wager?",
			"Daily Double time! Make your wager!",
		},
	},
}

// templateResponse selects a base utterance for the context, fills its
// placeholders, runs the personality transform, and trims or pads to the
// requested length bucket.
func templateResponse(rng *rand.Rand, ctx prompt.Context) string {
	set := templateSet(ctx)
	text := set[rng.Intn(len(set))]
	text = fillPlaceholders(text, ctx.StepSettings)
	text = personality.ApplyIntensity(text, ctx.Personality, rng)
	return adjustLength(text, ctx.Length)
}

func templateSet(ctx prompt.Context) []string {
	product, ok := templates[ctx.Product]
	if !ok {
		return []string{"Well done!"}
	}

	var key string
	switch ctx.StepType {
	case game.StepRoundResult:
		key = "incorrect"
		if ctx.StepSettings.IsCorrect {
			key = "correct"
		}
	case game.StepStreakMilestone:
		key = "streak"
	case game.StepBankrupt:
		key = "bankrupt"
	case game.StepBigMoneySpin:
		key = "bigSpin"
	case game.StepPuzzleSolve, game.StepFinalPuzzle:
		key = "solve"
	case game.StepDailyDouble:
		key = "dailyDouble"
	default:
		key = "correct"
	}

	set := product[key]
	if len(set) == 0 {
		for _, fallback := range product {
			if len(fallback) > 0 {
				return fallback
			}
		}
		return []string{"Well done!"}
	}
	return set
}

func fillPlaceholders(text string, s game.StepSettings) string {
	text = strings.ReplaceAll(text, "[count]", strconv.Itoa(max(s.StreakCount, 1)))
	text = strings.ReplaceAll(text, "[amount]", strconv.Itoa(max(s.SpinValue, 0)))
	return text
}

func adjustLength(text string, length game.Length) string {
	switch length {
	case game.LengthShort:
		if idx := strings.IndexAny(text, ".!?"); idx >= 0 {
			return text[:idx+1]
		}
		return text
	case game.LengthLong, game.LengthBanter:
		return text + " Keep up the great energy and let's see what comes next!"
	}
	return text
}
