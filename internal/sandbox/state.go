// Package sandbox holds the mutable session state behind the host
// playground. State is plain data plus update methods that keep the
// invariants the UI relies on (valid flow step per product, roster size
// per mode).
package sandbox

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/voxlab/hostbox/internal/game"
	"github.com/voxlab/hostbox/internal/host"
	"github.com/voxlab/hostbox/internal/personality"
	"github.com/voxlab/hostbox/internal/speech"
)

const (
	MinPlayers = 1
	MaxPlayers = 6
)

// State is one user's sandbox session.
type State struct {
	Product      game.ProductID       `json:"selectedProduct"`
	Length       game.Length          `json:"selectedResponseLength"`
	GameMode     game.Mode            `json:"selectedGameMode"`
	FlowStep     string               `json:"selectedFlowStep"`
	StepSettings game.StepSettings    `json:"flowStepSettings"`
	Personality  personality.Settings `json:"personalitySettings"`
	Host         host.Selected        `json:"selectedPersonality"`
	Voice        string               `json:"selectedVoice"`
	Players      []game.Player        `json:"players"`
	InputText    string               `json:"inputText"`
}

// NewState returns the default session: SongQuiz round results, medium
// responses, one player, every slider centered.
func NewState() *State {
	def := host.Default()
	return &State{
		Product:      game.ProductSongQuiz,
		Length:       game.LengthMedium,
		GameMode:     game.ModeSingle,
		FlowStep:     "round_result",
		StepSettings: game.DefaultStepSettings(),
		Personality:  personality.DefaultSettings(),
		Host:         host.Selected{ID: def.ID, Name: def.Name},
		Voice:        speech.DefaultVoice().ID,
		Players:      []game.Player{newPlayer("Player 1")},
	}
}

func newPlayer(name string) game.Player {
	return game.Player{ID: uuid.NewString(), Name: name, Score: 0}
}

// Valid reports whether the state can drive a generation request.
func (s *State) Valid() bool {
	return s.Product != "" && s.Length != "" && s.FlowStep != ""
}

// SetProduct switches the product and auto-selects its first flow step so
// the selected step always belongs to the selected product. Unknown
// products are rejected.
func (s *State) SetProduct(id game.ProductID) error {
	p, ok := game.ProductByID(id)
	if !ok {
		return fmt.Errorf("unknown product %q", id)
	}
	s.Product = id
	s.FlowStep = ""
	if len(p.FlowSteps) > 0 {
		s.FlowStep = p.FlowSteps[0].ID
	}
	return nil
}

// SetFlowStep selects a flow step of the current product.
func (s *State) SetFlowStep(id string) error {
	p, ok := game.ProductByID(s.Product)
	if !ok {
		return fmt.Errorf("no product selected")
	}
	if _, ok := p.FindStep(id); !ok {
		return fmt.Errorf("flow step %q does not belong to %s", id, s.Product)
	}
	s.FlowStep = id
	return nil
}

// StepType returns the type tag of the selected flow step.
func (s *State) StepType() game.StepType {
	if p, ok := game.ProductByID(s.Product); ok {
		if step, ok := p.FindStep(s.FlowStep); ok {
			return step.Type
		}
	}
	return ""
}

// SetGameMode switches mode and adjusts the roster: single mode resets to
// one fresh player, multiplayer tops a one-player roster up to two.
func (s *State) SetGameMode(mode game.Mode) {
	s.GameMode = mode
	switch mode {
	case game.ModeSingle:
		s.Players = []game.Player{newPlayer("Player 1")}
	case game.ModeMultiplayer:
		if len(s.Players) == 1 {
			s.Players = append(s.Players, newPlayer("Player 2"))
		}
	}
}

// AddPlayer appends a roster entry up to the limit.
func (s *State) AddPlayer(name string) error {
	if len(s.Players) >= MaxPlayers {
		return fmt.Errorf("roster is full (%d players max)", MaxPlayers)
	}
	if name == "" {
		name = fmt.Sprintf("Player %d", len(s.Players)+1)
	}
	s.Players = append(s.Players, newPlayer(name))
	return nil
}

// RemovePlayer drops a roster entry by id, keeping the roster non-empty.
func (s *State) RemovePlayer(id string) error {
	if len(s.Players) <= MinPlayers {
		return fmt.Errorf("roster must keep at least %d player", MinPlayers)
	}
	for i, p := range s.Players {
		if p.ID == id {
			s.Players = append(s.Players[:i], s.Players[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no player with id %q", id)
}

// SetScore updates one player's score. Scores never go negative.
func (s *State) SetScore(id string, score int) error {
	if score < 0 {
		score = 0
	}
	for i := range s.Players {
		if s.Players[i].ID == id {
			s.Players[i].Score = score
			return nil
		}
	}
	return fmt.Errorf("no player with id %q", id)
}

// SetPersonality stores the sliders, clamped into range.
func (s *State) SetPersonality(p personality.Settings) {
	s.Personality = p.Clamp()
}

// SetHost selects the active host persona.
func (s *State) SetHost(id string) error {
	p, err := host.ByID(id)
	if err != nil {
		return err
	}
	s.Host = host.Selected{ID: p.ID, Name: p.Name}
	return nil
}

// SetVoice selects the TTS voice for dependent synthesis.
func (s *State) SetVoice(id string) error {
	if _, ok := speech.VoiceByID(id); !ok {
		return fmt.Errorf("unknown voice %q", id)
	}
	s.Voice = id
	return nil
}

// Reset restores the default session.
func (s *State) Reset() {
	*s = *NewState()
}
