package domain

// Equipment slot indices. Slots are fixed positions on the profile screen:
// the top row holds racket, grip and shoes next to the character portrait,
// the bottom row holds wristband, nutrition and training.
const (
	SlotRacket    = 1
	SlotGrip      = 2
	SlotShoes     = 3
	SlotWristband = 4
	SlotNutrition = 5
	SlotWorkout   = 6

	SlotCount = 6
)

// SlotName returns the display name for a slot index, or "" when the index
// is out of range.
func SlotName(slot int) string {
	switch slot {
	case SlotRacket:
		return "Racket"
	case SlotGrip:
		return "Grip"
	case SlotShoes:
		return "Shoes"
	case SlotWristband:
		return "Wristband"
	case SlotNutrition:
		return "Nutrition"
	case SlotWorkout:
		return "Workout"
	}
	return ""
}

// EquipmentItem is one resolved equipment card. Level is nil when the level
// badge could not be read.
type EquipmentItem struct {
	Slot  int    `json:"slot"`
	Name  string `json:"name"`
	Level *int   `json:"level,omitempty"`
}

// ExtractionResult holds everything an engine managed to read from a single
// profile screenshot. Every field is optional: a partially readable image
// still produces a result, with the gaps reflected in Confidence.
type ExtractionResult struct {
	CharacterName  *string         `json:"character_name,omitempty"`
	CharacterLevel *int            `json:"character_level,omitempty"`
	TrophyPoints   *int            `json:"trophy_points,omitempty"`
	GlobalPower    *int            `json:"global_power,omitempty"`
	Agility        *int            `json:"agility,omitempty"`
	Endurance      *int            `json:"endurance,omitempty"`
	Serve          *int            `json:"serve,omitempty"`
	Volley         *int            `json:"volley,omitempty"`
	Forehand       *int            `json:"forehand,omitempty"`
	Backhand       *int            `json:"backhand,omitempty"`
	Equipment      []EquipmentItem `json:"equipment,omitempty"`
	Confidence     float64         `json:"confidence"`
	Warnings       []string        `json:"warnings,omitempty"`
	RawText        string          `json:"-"`
}

// EquipmentBySlot returns the item occupying the given slot, or nil.
func (r *ExtractionResult) EquipmentBySlot(slot int) *EquipmentItem {
	for i := range r.Equipment {
		if r.Equipment[i].Slot == slot {
			return &r.Equipment[i]
		}
	}
	return nil
}

// Attributes returns the six playing attributes in canonical order. Nil
// entries mark attributes the engine could not read.
func (r *ExtractionResult) Attributes() [6]*int {
	return [6]*int{r.Agility, r.Endurance, r.Serve, r.Volley, r.Forehand, r.Backhand}
}

// AttributeNames lists the six attributes in the same order as Attributes.
var AttributeNames = [6]string{"Agility", "Endurance", "Serve", "Volley", "Forehand", "Backhand"}
