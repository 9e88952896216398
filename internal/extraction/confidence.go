package extraction

import "github.com/Lestat2Lioncourt/discord-bot/internal/domain"

// confidence counts 22 expected fields: name, character level, trophy
// points, global power, the six attributes, and a name plus a level for
// each of the six equipment slots.
const expectedFieldCount = 22

// Score computes the share of expected fields the result actually carries.
func Score(r *domain.ExtractionResult) float64 {
	found := 0

	if r.CharacterName != nil && *r.CharacterName != "" {
		found++
	}
	if r.CharacterLevel != nil {
		found++
	}
	if r.TrophyPoints != nil {
		found++
	}
	if r.GlobalPower != nil {
		found++
	}
	for _, attr := range r.Attributes() {
		if attr != nil {
			found++
		}
	}

	for slot := 1; slot <= domain.SlotCount; slot++ {
		item := r.EquipmentBySlot(slot)
		if item == nil {
			continue
		}
		if item.Name != "" {
			found++
		}
		if item.Level != nil {
			found++
		}
	}

	return float64(found) / float64(expectedFieldCount)
}
