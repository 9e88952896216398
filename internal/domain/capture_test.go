package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptureStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    CaptureStatus
		to      CaptureStatus
		allowed bool
	}{
		{"pending to completed", CaptureStatusPending, CaptureStatusCompleted, true},
		{"completed to validated", CaptureStatusCompleted, CaptureStatusValidated, true},
		{"completed to rejected", CaptureStatusCompleted, CaptureStatusRejected, true},
		{"pending to validated skips processing", CaptureStatusPending, CaptureStatusValidated, false},
		{"validated is terminal", CaptureStatusValidated, CaptureStatusPending, false},
		{"rejected is terminal", CaptureStatusRejected, CaptureStatusCompleted, false},
		{"completed cannot revert", CaptureStatusCompleted, CaptureStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestCaptureStatusValid(t *testing.T) {
	assert.True(t, CaptureStatusPending.Valid())
	assert.True(t, CaptureStatusFailed.Valid())
	assert.False(t, CaptureStatus("archived").Valid())
}

func TestCaptureIsLegacy(t *testing.T) {
	c := &Capture{SubmitterID: "123"}
	assert.True(t, c.IsLegacy())

	id := int64(7)
	c.SubjectID = &id
	assert.False(t, c.IsLegacy())
}

func TestExtractionResultEquipmentBySlot(t *testing.T) {
	lvl := 11
	r := &ExtractionResult{Equipment: []EquipmentItem{
		{Slot: SlotRacket, Name: "Samurai", Level: &lvl},
		{Slot: SlotShoes, Name: "Feather"},
	}}

	item := r.EquipmentBySlot(SlotRacket)
	if assert.NotNil(t, item) {
		assert.Equal(t, "Samurai", item.Name)
	}
	assert.Nil(t, r.EquipmentBySlot(SlotNutrition))
}
