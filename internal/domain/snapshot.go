package domain

import "time"

// Subject is a tracked player whose stat history snapshots belong to. A
// Discord user may maintain several subjects (their own account plus friends
// or club members they record on behalf of).
type Subject struct {
	ID        int64     `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// StatSnapshot is one append-only point in a subject's history, produced by
// a validated capture. Attribute fields mirror ExtractionResult but are
// concrete: validation rejects results too incomplete to store.
type StatSnapshot struct {
	ID             int64           `json:"id"`
	SubjectID      int64           `json:"subject_id"`
	CaptureID      int64           `json:"capture_id"`
	SubmitterID    string          `json:"submitter_id"`
	CharacterName  string          `json:"character_name"`
	CharacterLevel *int            `json:"character_level,omitempty"`
	TrophyPoints   *int            `json:"trophy_points,omitempty"`
	GlobalPower    *int            `json:"global_power,omitempty"`
	Agility        *int            `json:"agility,omitempty"`
	Endurance      *int            `json:"endurance,omitempty"`
	Serve          *int            `json:"serve,omitempty"`
	Volley         *int            `json:"volley,omitempty"`
	Forehand       *int            `json:"forehand,omitempty"`
	Backhand       *int            `json:"backhand,omitempty"`
	BuildLabel     string          `json:"build_label"`
	Equipment      []EquipmentItem `json:"equipment,omitempty"`
	RecordedAt     time.Time       `json:"recorded_at"`

	// SubjectName is only populated by cross-subject queries.
	SubjectName string `json:"subject_name,omitempty"`
}

// Attributes returns the six playing attributes in canonical order.
func (s *StatSnapshot) Attributes() [6]*int {
	return [6]*int{s.Agility, s.Endurance, s.Serve, s.Volley, s.Forehand, s.Backhand}
}
