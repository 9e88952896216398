package claudevision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lestat2Lioncourt/discord-bot/internal/catalog"
	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

type fakeClient struct {
	reply string
	err   error
}

func (f *fakeClient) Describe(context.Context, []byte) (string, error) {
	return f.reply, f.err
}

func TestExtractFullReply(t *testing.T) {
	client := &fakeClient{reply: `{
		"character_name": "Mei-Li",
		"character_level": 14,
		"points": 1770,
		"global_power": 413,
		"stats": {"agility": 98, "endurance": 70, "serve": 45, "volley": 38, "forehand": 71, "backhand": 91},
		"equipment": [
			{"slot": 1, "name": "Samourai", "level": 12},
			{"slot": 3, "name": "enciume", "level": 11}
		]
	}`}
	eng := NewEngine(client, catalog.NewResolver())

	result, err := eng.Extract(context.Background(), []byte{0x89, 0x50})
	require.NoError(t, err)

	require.NotNil(t, result.CharacterName)
	assert.Equal(t, "Mei-Li", *result.CharacterName)
	require.NotNil(t, result.TrophyPoints)
	assert.Equal(t, 1770, *result.TrophyPoints)
	require.NotNil(t, result.Agility)
	assert.Equal(t, 98, *result.Agility)

	// Misread card name is corrected to its canonical spelling.
	shoes := result.EquipmentBySlot(domain.SlotShoes)
	require.NotNil(t, shoes)
	assert.Equal(t, "Enclume", shoes.Name)

	// name, level, points, power, 6 stats, 2 card names, 2 card levels = 14 of 22.
	assert.InDelta(t, 14.0/22.0, result.Confidence, 1e-9)
}

func TestExtractMalformedReply(t *testing.T) {
	eng := NewEngine(&fakeClient{reply: "I could not read the screenshot."}, catalog.NewResolver())

	_, err := eng.Extract(context.Background(), []byte{1})
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestExtractRejectsInvalidSlot(t *testing.T) {
	eng := NewEngine(&fakeClient{reply: `{"equipment": [{"slot": 9, "name": "Zeus"}]}`}, catalog.NewResolver())

	_, err := eng.Extract(context.Background(), []byte{1})
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestExtractPropagatesClientErrors(t *testing.T) {
	eng := NewEngine(&fakeClient{err: domain.ErrTransientExtraction}, catalog.NewResolver())

	_, err := eng.Extract(context.Background(), []byte{1})
	assert.ErrorIs(t, err, domain.ErrTransientExtraction)
}
