package game

// ProductID identifies one of the supported trivia products.
type ProductID string

const (
	ProductSongQuiz ProductID = "songquiz"
	ProductWheel    ProductID = "wheel"
	ProductJeopardy ProductID = "jeopardy"
)

// Mode is the player-count mode of a session.
type Mode string

const (
	ModeSingle      Mode = "single"
	ModeMultiplayer Mode = "multiplayer"
)

// Player is one roster entry. Score is never negative.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// StepType tags a flow step with the settings panel and prompt behavior
// that applies to it. The set is closed; every consumer either handles a
// type explicitly or falls through to a defined default.
type StepType string

const (
	StepRoundResult        StepType = "round_result"
	StepStreakMilestone    StepType = "streak_milestone"
	StepGameResult         StepType = "game_result"
	StepComebackMoment     StepType = "comeback_moment"
	StepAnswerSteal        StepType = "answer_steal"
	StepPuzzleSolve        StepType = "puzzle_solve"
	StepBankrupt           StepType = "bankrupt"
	StepBigMoneySpin       StepType = "big_money_spin"
	StepFinalPuzzle        StepType = "final_puzzle"
	StepDailyDouble        StepType = "daily_double"
	StepCategoryCompletion StepType = "category_completion"
	StepFinalJeopardy      StepType = "final_jeopardy"
	StepScoreMomentum      StepType = "score_momentum"
)

// FlowStep is one "moment" a host response can react to.
type FlowStep struct {
	ID          string
	Name        string
	Description string
	Type        StepType
	HasSettings bool
}

// Product is one of the three trivia games and its ordered flow steps.
type Product struct {
	ID          ProductID
	Name        string
	Description string
	FlowSteps   []FlowStep
}

// FindStep returns the flow step with the given id, or false.
func (p *Product) FindStep(id string) (FlowStep, bool) {
	for _, s := range p.FlowSteps {
		if s.ID == id {
			return s, true
		}
	}
	return FlowStep{}, false
}

// ProductByID resolves a product from the static catalog.
func ProductByID(id ProductID) (*Product, bool) {
	for i := range Products {
		if Products[i].ID == id {
			return &Products[i], true
		}
	}
	return nil, false
}

// scoreRelevantSteps are the flow steps where the prompt formats the roster
// with scores instead of bare names.
var scoreRelevantSteps = map[StepType]bool{
	StepRoundResult:     true,
	StepGameResult:      true,
	StepStreakMilestone: true,
	StepComebackMoment:  true,
	StepAnswerSteal:     true,
}

// ScoresRelevant reports whether player scores matter for the step type.
func ScoresRelevant(t StepType) bool {
	return scoreRelevantSteps[t]
}
