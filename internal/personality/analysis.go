package personality

// Tone is the coarse playful/snarky bucket derived from the first slider.
type Tone string

const (
	TonePlayful  Tone = "playful"
	ToneBalanced Tone = "balanced"
	ToneSnarky   Tone = "snarky"
)

// Excitement is the ordinal energy bucket derived from the second slider.
// Slider 1 maps to maximum, slider 5 to minimal.
type Excitement string

const (
	ExcitementMinimal  Excitement = "minimal"
	ExcitementLow      Excitement = "low"
	ExcitementModerate Excitement = "moderate"
	ExcitementHigh     Excitement = "high"
	ExcitementMaximum  Excitement = "maximum"
)

// Encouragement is the ordinal support bucket derived from the third slider.
type Encouragement string

const (
	EncouragementMaxGentle Encouragement = "maximum-gentle"
	EncouragementGentle    Encouragement = "gentle"
	EncouragementRealistic Encouragement = "realistic"
	EncouragementTough     Encouragement = "tough"
	EncouragementMaxTough  Encouragement = "maximum-tough"
)

// Analysis is the derived, read-only view of a Settings value. It is never
// stored; callers recompute it from Settings on demand.
type Analysis struct {
	Style         string        `json:"style"`
	Energy        string        `json:"energy"`
	Support       string        `json:"support"`
	Tone          Tone          `json:"tone"`
	Excitement    Excitement    `json:"excitement"`
	Encouragement Encouragement `json:"encouragement"`
}

// Analyze maps slider values to the structured personality description.
// Pure and total: out-of-range input is clamped rather than rejected.
func Analyze(s Settings) Analysis {
	s = s.Clamp()
	return Analysis{
		Style:         styleFor(s.PlayfulSnarky),
		Energy:        energyFor(s.ExcitementStyle),
		Support:       supportFor(s.EncouragementStyle),
		Tone:          toneFor(s.PlayfulSnarky),
		Excitement:    excitementFor(s.ExcitementStyle),
		Encouragement: encouragementFor(s.EncouragementStyle),
	}
}

func styleFor(v int) string {
	switch v {
	case 1:
		return "Maximum Playful & Bubbly - Childlike Wonder"
	case 2:
		return "High Playful & Lighthearted - Enthusiastic Joy"
	case 4:
		return "High Witty & Sharp-tongued - Clever Observations"
	case 5:
		return "Maximum Snarky & Edgy - Sophisticated Sarcasm"
	default:
		return "Balanced Wit & Charm - Professional Personality"
	}
}

func energyFor(v int) string {
	switch v {
	case 1:
		return "Maximum excitement about everything - boundless enthusiasm"
	case 2:
		return "High-energy reactions to most positive moments"
	case 4:
		return "Selective excitement reserved for impressive moments"
	case 5:
		return "Minimal excitement - composed and focused analysis"
	default:
		return "Moderate energy distribution based on context"
	}
}

func supportFor(v int) string {
	switch v {
	case 1:
		return "Maximum gentleness - nurturing and comforting always"
	case 2:
		return "High supportive & sympathetic approach"
	case 4:
		return "Direct & motivational with challenging encouragement"
	case 5:
		return "Maximum tough love - demanding excellence and improvement"
	default:
		return "Balanced support with realistic expectations"
	}
}

func toneFor(v int) Tone {
	switch {
	case v <= 2:
		return TonePlayful
	case v >= 4:
		return ToneSnarky
	default:
		return ToneBalanced
	}
}

func excitementFor(v int) Excitement {
	switch v {
	case 1:
		return ExcitementMaximum
	case 2:
		return ExcitementHigh
	case 4:
		return ExcitementLow
	case 5:
		return ExcitementMinimal
	default:
		return ExcitementModerate
	}
}

func encouragementFor(v int) Encouragement {
	switch v {
	case 1:
		return EncouragementMaxGentle
	case 2:
		return EncouragementGentle
	case 4:
		return EncouragementTough
	case 5:
		return EncouragementMaxTough
	default:
		return EncouragementRealistic
	}
}
