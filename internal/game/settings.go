package game

import "encoding/json"

// Difficulty grades a round or puzzle.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// StepSettings is the shared bag of flow-step knobs. Every product reads
// only the fields listed in its Behavior; switching products leaves the
// other fields untouched so they survive a round trip through the UI.
type StepSettings struct {
	IsCorrect   bool       `json:"isCorrect"`
	Performance int        `json:"performance"`
	StreakCount int        `json:"streakCount"`
	SpinValue   int        `json:"spinValue"`
	WagerAmount int        `json:"wagerAmount"`
	Difficulty  Difficulty `json:"difficulty"`
}

// DefaultStepSettings mirrors the sandbox defaults.
func DefaultStepSettings() StepSettings {
	return StepSettings{
		IsCorrect:   true,
		Performance: 3,
		StreakCount: 3,
		SpinValue:   1000,
		WagerAmount: 1000,
		Difficulty:  DifficultyMedium,
	}
}

// SettingField names one StepSettings field for per-product filtering.
type SettingField string

const (
	FieldIsCorrect   SettingField = "isCorrect"
	FieldPerformance SettingField = "performance"
	FieldStreakCount SettingField = "streakCount"
	FieldSpinValue   SettingField = "spinValue"
	FieldWagerAmount SettingField = "wagerAmount"
	FieldDifficulty  SettingField = "difficulty"
)

// Behavior is the per-product prompt behavior: which settings the prompt
// exposes to the model and the one-paragraph game lore it leads with.
type Behavior struct {
	Lore     string
	Relevant []SettingField
}

var behaviors = map[ProductID]Behavior{
	ProductSongQuiz: {
		Lore:     "This is a music trivia game where players identify songs",
		Relevant: []SettingField{FieldIsCorrect, FieldPerformance, FieldStreakCount, FieldDifficulty},
	},
	ProductWheel: {
		Lore:     "This is a word puzzle game with spinning wheel mechanics",
		Relevant: []SettingField{FieldSpinValue, FieldDifficulty},
	},
	ProductJeopardy: {
		Lore:     "This is a quiz game with categories, clues, and wagering",
		Relevant: []SettingField{FieldWagerAmount, FieldDifficulty},
	},
}

// BehaviorFor returns a product's prompt behavior, or false for an unknown
// product id.
func BehaviorFor(id ProductID) (Behavior, bool) {
	b, ok := behaviors[id]
	return b, ok
}

// Filtered returns only the fields relevant to the given product, keyed by
// their wire names, ready for JSON rendering inside a prompt.
func (s StepSettings) Filtered(id ProductID) map[string]any {
	b, ok := behaviors[id]
	if !ok {
		return map[string]any{}
	}
	out := make(map[string]any, len(b.Relevant))
	for _, f := range b.Relevant {
		switch f {
		case FieldIsCorrect:
			out["isCorrect"] = s.IsCorrect
		case FieldPerformance:
			out["performance"] = s.Performance
		case FieldStreakCount:
			out["streakCount"] = s.StreakCount
		case FieldSpinValue:
			out["spinValue"] = s.SpinValue
		case FieldWagerAmount:
			out["wagerAmount"] = s.WagerAmount
		case FieldDifficulty:
			out["difficulty"] = string(s.Difficulty)
		}
	}
	return out
}

// FilteredJSON renders the filtered settings as compact JSON.
func (s StepSettings) FilteredJSON(id ProductID) string {
	b, err := json.Marshal(s.Filtered(id))
	if err != nil {
		return "{}"
	}
	return string(b)
}
