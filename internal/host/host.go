package host

import "fmt"

// Personality is a static catalog entry for one host persona. Entries are
// loaded once at startup and never mutated.
type Personality struct {
	ID          string
	Name        string
	DisplayName string
	Avatar      string

	Age             string
	CorePersonality string
	Description     string

	Short  ShortExamples
	Medium MediumExamples
	Long   LongExamples
	Banter BanterExamples

	VoiceGuidelines string
	ExpressionStyle string

	SystemPromptCore string
	Pillars          []string
}

// ShortExamples are one-to-three word utterances by emotional category.
type ShortExamples struct {
	Celebratory []string
	Impressed   []string
	Encouraging []string
	Snarky      []string
}

// MediumExamples are one-line utterances by round outcome.
type MediumExamples struct {
	Correct    []string
	Incorrect  []string
	Transition []string
}

// LongExamples are sentence-or-two utterances with inline pause markup.
type LongExamples struct {
	Performance []string
	Comeback    []string
	Banter      []string
}

// BanterExamples are free-standing color commentary lines.
type BanterExamples struct {
	Musical       []string
	Cultural      []string
	Observational []string
}

// Selected is the lightweight reference carried in session state and
// response contexts.
type Selected struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ByID resolves a catalog entry. A miss is a configuration error, not a
// user error; callers must abort rather than fall back to a default.
func ByID(id string) (*Personality, error) {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i], nil
		}
	}
	return nil, fmt.Errorf("unknown host personality %q", id)
}

// Default returns the catalog's first entry (Riley).
func Default() *Personality {
	return &Catalog[0]
}
