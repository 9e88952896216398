// Package diagnostics archives low-confidence extractions so region tuning
// can be done against real failures.
package diagnostics

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
	"github.com/Lestat2Lioncourt/discord-bot/internal/logger"
)

// Sink stores failed extraction artifacts.
type Sink interface {
	// Archive writes the original image and an extraction report side by
	// side, named after the moment and the confidence reached.
	Archive(ctx context.Context, capture *domain.Capture, result *domain.ExtractionResult) error
}

type fsSink struct {
	dir string
}

// NewSink creates a filesystem sink rooted at dir.
func NewSink(dir string) Sink {
	return &fsSink{dir: dir}
}

func (s *fsSink) Archive(ctx context.Context, capture *domain.Capture, result *domain.ExtractionResult) error {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create diagnostics dir: %w", err)
	}

	base := fmt.Sprintf("failed_%s_%02d",
		time.Now().Format("20060102_150405"),
		int(result.Confidence*100))

	ext := filepath.Ext(capture.ImageFilename)
	if ext == "" {
		ext = ".png"
	}
	imagePath := filepath.Join(s.dir, base+ext)
	if err := os.WriteFile(imagePath, capture.ImageData, 0o644); err != nil {
		return fmt.Errorf("archive image: %w", err)
	}

	reportPath := filepath.Join(s.dir, base+".txt")
	if err := os.WriteFile(reportPath, []byte(buildReport(capture, result)), 0o644); err != nil {
		return fmt.Errorf("archive report: %w", err)
	}

	log.Info("Failed extraction archived", "captureID", capture.ID, "path", imagePath)
	return nil
}

// rawTextLimit keeps reports readable; OCR aggregates can run long.
const rawTextLimit = 1000

func buildReport(capture *domain.Capture, result *domain.ExtractionResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Capture: %d\n", capture.ID)
	fmt.Fprintf(&b, "Confidence: %.0f%%\n", result.Confidence*100)
	fmt.Fprintf(&b, "Character: %s\n", strOrQuestion(result.CharacterName))
	fmt.Fprintf(&b, "Points: %s  Power: %s\n", intOrQuestion(result.TrophyPoints), intOrQuestion(result.GlobalPower))

	attrs := result.Attributes()
	for i, name := range domain.AttributeNames {
		fmt.Fprintf(&b, "%s: %s\n", name, intOrQuestion(attrs[i]))
	}

	b.WriteString("Equipment:\n")
	for slot := 1; slot <= domain.SlotCount; slot++ {
		item := result.EquipmentBySlot(slot)
		if item == nil {
			fmt.Fprintf(&b, "  %s: ?\n", domain.SlotName(slot))
			continue
		}
		fmt.Fprintf(&b, "  %s: %s (%s)\n", domain.SlotName(slot), orQuestion(item.Name), intOrQuestion(item.Level))
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(&b, "Warnings: %s\n", strings.Join(result.Warnings, "; "))
	}

	raw := result.RawText
	if len(raw) > rawTextLimit {
		raw = raw[:rawTextLimit]
	}
	b.WriteString("\n=== RAW TEXT ===\n")
	b.WriteString(raw)
	b.WriteString("\n")
	return b.String()
}

func strOrQuestion(s *string) string {
	if s == nil || *s == "" {
		return "?"
	}
	return *s
}

func orQuestion(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

func intOrQuestion(v *int) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *v)
}
