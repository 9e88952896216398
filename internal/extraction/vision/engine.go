// Package vision is the local extraction engine: a multi-pass Tesseract
// pipeline over targeted regions of a profile screenshot.
package vision

import (
	"bytes"
	"context"
	"image"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	// Submissions accept .webp, which the standard image decoders do not
	// cover.
	_ "golang.org/x/image/webp"

	"github.com/Lestat2Lioncourt/discord-bot/internal/catalog"
	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
	"github.com/Lestat2Lioncourt/discord-bot/internal/extraction"
	"github.com/Lestat2Lioncourt/discord-bot/internal/logger"
)

type engine struct {
	resolver *catalog.Resolver
}

// NewEngine creates the OCR extraction engine.
func NewEngine(resolver *catalog.Resolver) extraction.Engine {
	return &engine{resolver: resolver}
}

func (e *engine) Name() string { return EngineName }

func (e *engine) Extract(ctx context.Context, imageBytes []byte) (*domain.ExtractionResult, error) {
	log := logger.FromContext(ctx)
	result := &domain.ExtractionResult{}

	img, err := imaging.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		// An undecodable image is a calibration signal, not a transient
		// condition: returning an error would leave the capture pending
		// and block the queue on every retry.
		log.Warn("undecodable image", "error", err)
		result.Warnings = append(result.Warnings, WarnUnreadableImage)
		result.Confidence = 0
		return result, nil
	}

	// Pass 1: stats panel (character header + attributes).
	statsText, ok := e.readStatsText(ctx, prepareStats(img))
	if !ok {
		result.Warnings = append(result.Warnings, WarnStatsPassFailed)
	}
	parseStats(statsText, result)

	// Pass 2: card names from three preprocessing opinions on the grid zone.
	equip := imaging.Crop(img, equipmentRegion(img.Bounds()))
	var cardTexts []string
	for _, prepared := range []*image.NRGBA{
		prepareStats(equip),
		prepareCardNames(equip),
		preparePlain(equip),
	} {
		text, ocrErr := e.runOCR(prepared, textWhitelist, gosseract.PSM_AUTO)
		if ocrErr != nil {
			log.Debug("card name pass failed", "error", ocrErr)
			continue
		}
		cardTexts = append(cardTexts, text)
	}
	cardText := joinTexts(cardTexts)
	equipment := parseEquipment(e.resolver, cardText)

	// Pass 3: level badges per grid cell.
	levels := e.readBadgeLevels(ctx, equip)
	if level, ok := levels[0]; ok {
		result.CharacterLevel = &level
	}
	for slot := 1; slot <= domain.SlotCount; slot++ {
		level, hasLevel := levels[slot]
		item, hasItem := equipment[slot]
		switch {
		case hasItem && hasLevel && item.Level == nil:
			// The badge read is more reliable than a level parsed from text.
			lvl := level
			item.Level = &lvl
			equipment[slot] = item
		case !hasItem && hasLevel:
			lvl := level
			equipment[slot] = domain.EquipmentItem{Slot: slot, Level: &lvl}
		}
	}
	for slot := 1; slot <= domain.SlotCount; slot++ {
		if item, ok := equipment[slot]; ok {
			result.Equipment = append(result.Equipment, item)
		}
	}

	result.RawText = statsText + "\n" + cardText
	result.Confidence = extraction.Score(result)
	log.Info("extraction finished",
		"engine", EngineName,
		"confidence", result.Confidence,
		"warnings", len(result.Warnings))
	return result, nil
}

// readStatsText runs the stats panel through several page segmentation
// strategies and keeps the text of the pass that recognized the most digits.
// Reports false when every pass errored.
func (e *engine) readStatsText(ctx context.Context, prepared *image.NRGBA) (string, bool) {
	log := logger.FromContext(ctx)

	psmModes := []gosseract.PageSegMode{
		gosseract.PSM_SINGLE_BLOCK,
		gosseract.PSM_SINGLE_COLUMN,
		gosseract.PSM_AUTO,
	}

	best := ""
	bestDigits := -1
	ok := false
	for _, mode := range psmModes {
		text, err := e.runOCR(prepared, textWhitelist, mode)
		if err != nil {
			log.Debug("stats pass failed", "psm", mode, "error", err)
			continue
		}
		ok = true
		if digits := countDigits(text); digits > bestDigits {
			best, bestDigits = text, digits
		}
	}
	return best, ok
}

// readBadgeLevels OCRs every badge crop, trying a few segmentation modes
// since the crops are tiny. Keys are slots, 0 being the character portrait.
func (e *engine) readBadgeLevels(ctx context.Context, equip *image.NRGBA) map[int]int {
	log := logger.FromContext(ctx)
	levels := make(map[int]int)

	psmModes := []gosseract.PageSegMode{
		gosseract.PSM_SINGLE_LINE,
		gosseract.PSM_SINGLE_WORD,
		gosseract.PSM_SINGLE_CHAR,
		gosseract.PSM_RAW_LINE,
	}

	for _, cell := range cardGrid {
		cellBounds := cellRegion(equip.Bounds(), cell)
		badge := imaging.Crop(equip, badgeRegion(cellBounds, cell.Badge))
		prepared := prepareBadge(badge)

		for _, mode := range psmModes {
			text, err := e.runOCR(prepared, digitWhitelist, mode)
			if err != nil {
				continue
			}
			if level, ok := parseBadgeLevel(text); ok {
				levels[cell.Slot] = level
				break
			}
		}
		if _, ok := levels[cell.Slot]; !ok {
			log.Debug("badge level unread", "slot", cell.Slot)
		}
	}
	return levels
}

// runOCR feeds a prepared image to a fresh Tesseract client.
func (e *engine) runOCR(img image.Image, whitelist string, psm gosseract.PageSegMode) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()
	_ = client.SetLanguage(ocrLanguage)
	_ = client.SetWhitelist(whitelist)
	_ = client.SetPageSegMode(psm)
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", err
	}

	text, err := client.Text()
	if err != nil {
		return "", err
	}
	return normalizeText(text), nil
}
