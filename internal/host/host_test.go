package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByID(t *testing.T) {
	for _, id := range []string{"riley", "willow", "alex", "jordan"} {
		p, err := ByID(id)
		require.NoError(t, err, id)
		assert.Equal(t, id, p.ID)
		assert.NotEmpty(t, p.CorePersonality)
		assert.NotEmpty(t, p.Pillars)
		assert.NotEmpty(t, p.VoiceGuidelines)
	}
}

func TestByIDUnknown(t *testing.T) {
	_, err := ByID("nonexistent")
	assert.Error(t, err)
}

func TestDefaultIsRiley(t *testing.T) {
	assert.Equal(t, "riley", Default().ID)
}

func TestCatalogExamplesPopulated(t *testing.T) {
	for _, p := range Catalog {
		assert.NotEmpty(t, p.Short.Celebratory, p.ID)
		assert.NotEmpty(t, p.Medium.Correct, p.ID)
		assert.NotEmpty(t, p.Long.Performance, p.ID)
		assert.NotEmpty(t, p.Banter.Musical, p.ID)
	}
}
