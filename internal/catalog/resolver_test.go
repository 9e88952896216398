package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

func TestNormalizeFoldsDiacritics(t *testing.T) {
	assert.Equal(t, "energie", Normalize("Énergie"))
	assert.Equal(t, "panthere", Normalize("PANTHÈRE"))
	assert.Equal(t, "koi", Normalize("Koï"))
}

func TestResolveKnownCards(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		candidate string
		slot      int
		name      string
	}{
		{"samourai", domain.SlotRacket, "Samourai"},
		{"Eagle", domain.SlotRacket, "Eagle"},
		{"katana", domain.SlotGrip, "Katana"},
		{"feather", domain.SlotShoes, "Feather"},
		{"macaw", domain.SlotWristband, "Macaw"},
		{"protéine", domain.SlotNutrition, "Proteine"},
		{"plyometrics", domain.SlotWorkout, "Plyometrics"},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			m, ok := r.Resolve(tt.candidate)
			require.True(t, ok)
			assert.Equal(t, tt.slot, m.Slot)
			assert.Equal(t, tt.name, m.Name)
		})
	}
}

func TestResolveCorrectsMisreads(t *testing.T) {
	r := NewResolver()

	// "enciume" and "enctume" are common misreads of Enclume.
	for _, noisy := range []string{"enciume", "enctume"} {
		m, ok := r.Resolve(noisy)
		require.True(t, ok, noisy)
		assert.Equal(t, domain.SlotShoes, m.Slot)
		assert.Equal(t, "Enclume", m.Name)
	}
}

func TestResolvePartialReads(t *testing.T) {
	r := NewResolver()

	// Clipped read still contains enough of the key.
	m, ok := r.Resolve("gladiateu")
	require.True(t, ok)
	assert.Equal(t, domain.SlotWristband, m.Slot)
}

func TestResolveRejectsUnknownAndShort(t *testing.T) {
	r := NewResolver()

	_, ok := r.Resolve("xyzzyplugh")
	assert.False(t, ok)

	_, ok = r.Resolve("ab")
	assert.False(t, ok)
}

func TestResolveIsDeterministic(t *testing.T) {
	r := NewResolver()

	// "tan" is contained in more than one catalog key; the scan order is
	// fixed, so repeated calls must agree.
	first, ok := r.Resolve("tan")
	require.True(t, ok)
	for i := 0; i < 200; i++ {
		m, ok := r.Resolve("tan")
		require.True(t, ok)
		assert.Equal(t, first, m)
	}
}

func TestFindAllOnePerSlot(t *testing.T) {
	r := NewResolver()

	text := "le samourai 12 la machette 9 plume 11 kodiak vegan sprint 10"
	found := r.FindAll(text)

	require.Len(t, found, 6)
	assert.Equal(t, "Samourai", found[domain.SlotRacket].Name)
	assert.Equal(t, "Machette", found[domain.SlotGrip].Name)
	assert.Equal(t, "Plume", found[domain.SlotShoes].Name)
	assert.Equal(t, "Kodiak", found[domain.SlotWristband].Name)
	assert.Equal(t, "Vegan", found[domain.SlotNutrition].Name)
	assert.Equal(t, "Sprint", found[domain.SlotWorkout].Name)
}
