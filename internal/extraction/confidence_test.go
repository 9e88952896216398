package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestScoreEmptyResult(t *testing.T) {
	assert.Equal(t, 0.0, Score(&domain.ExtractionResult{}))
}

func TestScoreFullResult(t *testing.T) {
	name := "Jack"
	r := &domain.ExtractionResult{
		CharacterName:  &name,
		CharacterLevel: intPtr(14),
		TrophyPoints:   intPtr(820),
		GlobalPower:    intPtr(3950),
		Agility:        intPtr(48),
		Endurance:      intPtr(52),
		Serve:          intPtr(61),
		Volley:         intPtr(44),
		Forehand:       intPtr(58),
		Backhand:       intPtr(47),
	}
	for slot := 1; slot <= domain.SlotCount; slot++ {
		r.Equipment = append(r.Equipment, domain.EquipmentItem{
			Slot: slot, Name: "Card", Level: intPtr(10),
		})
	}

	assert.Equal(t, 1.0, Score(r))
}

func TestScorePartialResult(t *testing.T) {
	name := "Jack"
	r := &domain.ExtractionResult{
		CharacterName: &name,
		GlobalPower:   intPtr(3950),
		Equipment: []domain.EquipmentItem{
			{Slot: domain.SlotRacket, Name: "Samurai"}, // name only, no level
		},
	}

	// name + power + one equipment name = 3 of 22
	assert.InDelta(t, 3.0/22.0, Score(r), 1e-9)
}

func TestScoreIgnoresEmptyNames(t *testing.T) {
	empty := ""
	r := &domain.ExtractionResult{
		CharacterName: &empty,
		Equipment:     []domain.EquipmentItem{{Slot: 2, Name: "", Level: intPtr(9)}},
	}

	// only the equipment level counts
	assert.InDelta(t, 1.0/22.0, Score(r), 1e-9)
}
