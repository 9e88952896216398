package diagnostics

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestArchiveWritesImageAndReport(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(filepath.Join(dir, "failed"))

	name := "Florence"
	capture := &domain.Capture{
		ID:            42,
		ImageData:     []byte{0x89, 0x50, 0x4e, 0x47},
		ImageFilename: "screen.png",
	}
	result := &domain.ExtractionResult{
		CharacterName: &name,
		TrophyPoints:  intPtr(812),
		Agility:       intPtr(48),
		Equipment: []domain.EquipmentItem{
			{Slot: domain.SlotRacket, Name: "Hammer", Level: intPtr(11)},
		},
		Confidence: 0.45,
		Warnings:   []string{"serve: not detected"},
		RawText:    "FLORENCE - 812",
	}

	err := sink.Archive(context.Background(), capture, result)
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(dir, "failed"))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var reportPath, imagePath string
	for _, e := range entries {
		assert.True(t, strings.HasPrefix(e.Name(), "failed_"))
		assert.True(t, strings.Contains(e.Name(), "_45"))
		switch filepath.Ext(e.Name()) {
		case ".txt":
			reportPath = filepath.Join(dir, "failed", e.Name())
		case ".png":
			imagePath = filepath.Join(dir, "failed", e.Name())
		}
	}
	require.NotEmpty(t, reportPath)
	require.NotEmpty(t, imagePath)

	img, err := os.ReadFile(imagePath)
	require.NoError(t, err)
	assert.Equal(t, capture.ImageData, img)

	report, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	text := string(report)
	assert.Contains(t, text, "Capture: 42")
	assert.Contains(t, text, "Confidence: 45%")
	assert.Contains(t, text, "Character: Florence")
	assert.Contains(t, text, "Racket: Hammer (11)")
	assert.Contains(t, text, "Grip: ?")
	assert.Contains(t, text, "serve: not detected")
	assert.Contains(t, text, "FLORENCE - 812")
}

func TestArchiveTruncatesLongRawText(t *testing.T) {
	_ = NewSink(t.TempDir())

	capture := &domain.Capture{ID: 1, ImageData: []byte{1}, ImageFilename: "s.jpg"}
	result := &domain.ExtractionResult{
		Confidence: 0.1,
		RawText:    strings.Repeat("x", rawTextLimit*2),
	}

	report := buildReport(capture, result)
	assert.Less(t, len(report), rawTextLimit+500)
}
