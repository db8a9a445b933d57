package personality

import (
	"math/rand"
	"regexp"
	"strings"
)

// The template fallback path has no model to condition, so it rewrites the
// drafted response directly: a tone pass, an excitement pass, and an
// encouragement pass, in that order. Randomness is deliberate (variety
// across identical calls); callers inject the source so tests can pin it.

var playfulWordSets = map[int][][]string{
	1: {
		{"OMG", "Woo-hoo", "Yay", "Super duper", "Totally awesome"},
		{"Amazing", "Incredible", "So cool", "Wonderful", "Fantastic"},
		{"Brilliant", "Perfect", "Stunning", "Magnificent", "Outstanding"},
	},
	2: {
		{"Awesome", "Fantastic", "Great job", "Nice work", "Sweet"},
		{"Excellent", "Terrific", "Well done", "Good stuff", "Cool"},
		{"Super", "Lovely", "Nice one", "Good going", "Solid"},
	},
}

var playfulTails = map[int][]string{
	1: {
		" That was absolutely adorable!", " You're such a star!", " I'm literally bouncing with joy!",
		" You're amazing!", " That made me so happy!", " You totally rock!",
		" I love your energy!", " You're incredible!", " That was magical!",
	},
	2: {
		" That was really fun!", " You did great!", " Nice one!",
		" Love it!", " You're doing awesome!", " Keep it up!",
		" That was cool!", " Good stuff!", " Way to go!",
	},
}

var snarkyReplacementSets = map[int][]map[string]string{
	4: {
		{"Great": "Alright then", "Good": "Look who's showing off", "Nice": "That's one way to do it", "Awesome": "Someone's been practicing"},
		{"Great": "Oh, getting fancy now", "Good": "Not too shabby", "Nice": "I see what you did there", "Awesome": "Showing some skill there"},
		{"Great": "Look at that", "Good": "There we go", "Nice": "Decent work", "Awesome": "Pretty smooth"},
	},
	5: {
		{"Great": "How sophisticated", "Good": "My, my", "Nice": "Well aren't we special", "Awesome": "Look at you go"},
		{"Great": "That's... something", "Good": "Sure thing, superstar", "Nice": "If you say so", "Awesome": "Aren't you just brilliant"},
		{"Great": "How delightful", "Good": "Thrilling", "Nice": "Riveting", "Awesome": "Absolutely groundbreaking"},
	},
}

var snarkyTails = map[int][]string{
	4: {" I suppose that'll do.", " Could be worse!", " That's... something.", " Not bad at all.", " There we have it.", " Fair enough.", " Can't argue with that."},
	5: {" ...if I do say so myself.", " How delightfully predictable.", " Well aren't you just special.", " Truly remarkable.", " How utterly shocking.", " What a surprise.", " Color me impressed.", " Revolutionary stuff."},
}

var excitedInterjections = []string{"WOW!", "YES!", "AMAZING!", "INCREDIBLE!"}

var gentleTails = []string{
	"You're doing wonderfully, sweetie!",
	"Don't worry, you've got this!",
	"Every step is progress!",
	"You should be proud of yourself!",
}

var challengingTails = []string{
	"Time to prove yourself.",
	"Show me what you're made of.",
	"No excuses, let's see improvement.",
	"That's not your best work.",
}

var measuredWords = map[string]string{
	"Awesome":   "Competent",
	"Amazing":   "Adequate",
	"Fantastic": "Satisfactory",
	"Great":     "Acceptable",
}

var directPhrases = map[string]string{
	"You can do it": "Step it up",
	"Try again":     "Focus and try again",
	"Don't worry":   "Shake it off",
	"Good try":      "Better luck next time",
}

var (
	neutralWordRe    = regexp.MustCompile(`Great|Good|Nice|Awesome`)
	bangRunRe        = regexp.MustCompile(`!+`)
	excitedKeywordRe = regexp.MustCompile(`perfect|amazing|incredible|streak|win`)
)

// ApplyIntensity rewrites a template-drafted response so it reflects the
// slider settings. Output for a given input belongs to an enumerable
// candidate set, not a single fixed string.
func ApplyIntensity(text string, s Settings, rng *rand.Rand) string {
	s = s.Clamp()
	text = applyTone(text, s.PlayfulSnarky, rng)
	text = applyExcitement(text, s.ExcitementStyle, rng)
	text = applyEncouragement(text, s.EncouragementStyle, rng)
	return text
}

func applyTone(text string, tone int, rng *rand.Rand) string {
	switch {
	case tone <= 2:
		sets := playfulWordSets[tone]
		words := sets[rng.Intn(len(sets))]
		text = replaceFirst(text, neutralWordRe, words[rng.Intn(len(words))])
		if tone == 1 && rng.Float64() > 0.5 {
			tails := playfulTails[1]
			text += tails[rng.Intn(len(tails))]
		}
	case tone >= 4:
		sets := snarkyReplacementSets[tone]
		repl := sets[rng.Intn(len(sets))]
		for original, snarky := range repl {
			text = replaceWordFold(text, original, snarky)
		}
		if rng.Float64() > 0.4 {
			tails := snarkyTails[tone]
			text += tails[rng.Intn(len(tails))]
		}
	}
	return text
}

func applyExcitement(text string, level int, rng *rand.Rand) string {
	switch level {
	case 1:
		text = forceDoubleBang(text)
		text += " 🎉✨"
		if rng.Float64() > 0.6 {
			text = excitedInterjections[rng.Intn(len(excitedInterjections))] + " " + text
		}
	case 2:
		if rng.Float64() > 0.3 {
			text = strings.Replace(text, ".", "!", 1)
			text += " 🎉"
		}
	case 4:
		text = bangRunRe.ReplaceAllString(text, ".")
		if excitedKeywordRe.MatchString(strings.ToLower(text)) {
			text += " Now THAT was worth getting excited about!"
		}
	case 5:
		text = bangRunRe.ReplaceAllString(text, ".")
		text = strings.ReplaceAll(text, "🎉", "")
		text = strings.ReplaceAll(text, "✨", "")
		for excited, measured := range measuredWords {
			text = replaceWordFold(text, excited, measured)
		}
	}
	return text
}

func applyEncouragement(text string, level int, rng *rand.Rand) string {
	switch level {
	case 1:
		if containsFailureCue(text) {
			text += " " + gentleTails[rng.Intn(len(gentleTails))]
		}
	case 2:
		text = replaceWordFold(text, "wrong", "not quite right")
		text = replaceWordFold(text, "missed", "didn't get that one")
		text = replaceWordFold(text, "failed", "didn't succeed this time")
	case 4:
		for soft, direct := range directPhrases {
			text = replaceWordFold(text, soft, direct)
		}
	case 5:
		if strings.Contains(text, "wrong") || strings.Contains(text, "missed") {
			text += " " + challengingTails[rng.Intn(len(challengingTails))]
		}
	}
	return text
}

func containsFailureCue(text string) bool {
	return strings.Contains(text, "wrong") ||
		strings.Contains(text, "missed") ||
		strings.Contains(text, "not quite")
}

func replaceFirst(text string, re *regexp.Regexp, repl string) string {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[0]] + repl + text[loc[1]:]
}

// replaceWordFold replaces all case-insensitive occurrences of old with new.
func replaceWordFold(text, old, new string) string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(old))
	return re.ReplaceAllString(text, new)
}

// forceDoubleBang upgrades the first terminal punctuation mark to "!!",
// skipping marks that are part of an ellipsis or an existing "!!" run.
func forceDoubleBang(text string) string {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' {
			continue
		}
		rest := text[i+1:]
		if strings.HasPrefix(rest, "..") || strings.HasPrefix(rest, "!") {
			continue
		}
		return text[:i] + "!!" + rest
	}
	return text
}
