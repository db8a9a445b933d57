package personality

// Settings holds the three host personality sliders. Each value is an
// integer in [1,5]; 1 and 5 are the extremes of each axis.
type Settings struct {
	PlayfulSnarky      int `json:"playfulSnarky"`      // 1=playful, 5=snarky
	ExcitementStyle    int `json:"excitementStyle"`    // 1=easily excited, 5=composed
	EncouragementStyle int `json:"encouragementStyle"` // 1=gentle, 5=tough love
}

// DefaultSettings returns the neutral midpoint on every axis.
func DefaultSettings() Settings {
	return Settings{PlayfulSnarky: 3, ExcitementStyle: 3, EncouragementStyle: 3}
}

// Clamp returns a copy with every slider forced into [1,5]. Input accepted
// from the outside (flags, TUI, API) goes through here; the analyzer and
// transforms assume already-valid values.
func (s Settings) Clamp() Settings {
	return Settings{
		PlayfulSnarky:      clamp(s.PlayfulSnarky),
		ExcitementStyle:    clamp(s.ExcitementStyle),
		EncouragementStyle: clamp(s.EncouragementStyle),
	}
}

func clamp(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}
