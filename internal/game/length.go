package game

// Length selects the target size of a generated host response.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
	LengthBanter Length = "banter"
)

// LengthSpec carries the labeling and token ceiling attached to a response length.
// MaxOutputTokens is the ceiling passed to the model provider so that the
// word range cannot be blown past even when the model rambles.
type LengthSpec struct {
	ID              Length
	Label           string
	Description     string
	WordRange       string
	MinWords        int
	MaxWords        int
	MaxOutputTokens int
}

// Lengths lists all response lengths in UI order.
var Lengths = []LengthSpec{
	{
		ID:              LengthShort,
		Label:           "Short",
		Description:     "Quick reactions and immediate responses",
		WordRange:       "1-3",
		MinWords:        1,
		MaxWords:        3,
		MaxOutputTokens: 15,
	},
	{
		ID:              LengthMedium,
		Label:           "Medium",
		Description:     "Balanced personality with moderate detail",
		WordRange:       "3-8",
		MinWords:        3,
		MaxWords:        8,
		MaxOutputTokens: 25,
	},
	{
		ID:              LengthLong,
		Label:           "Long",
		Description:     "Full personality expression with context",
		WordRange:       "12-20",
		MinWords:        12,
		MaxWords:        20,
		MaxOutputTokens: 50,
	},
	{
		ID:              LengthBanter,
		Label:           "Banter",
		Description:     "Extended conversational riffs between rounds",
		WordRange:       "16-30",
		MinWords:        16,
		MaxWords:        30,
		MaxOutputTokens: 75,
	},
}

// LengthSpecFor resolves a length id. Unknown ids fall back to medium so
// that a stale saved state never breaks generation.
func LengthSpecFor(l Length) LengthSpec {
	for _, s := range Lengths {
		if s.ID == l {
			return s
		}
	}
	return Lengths[1]
}
