package vision

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Lestat2Lioncourt/discord-bot/internal/catalog"
	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

// The header reads like "Mei-Li • 1770": the character name, a separator
// dot or dash, then the trophy points.
var (
	namePointsPattern = regexp.MustCompile(`([A-Za-z][A-Za-z\-\.]+(?:\s+[A-Za-z]+)?)\s*[-•·]\s*(\d{3,4})`)
	nameOnlyPattern   = regexp.MustCompile(`([A-Z][a-z]+(?:[- ][A-Z][a-z]+)?)\s*[-•·]`)
)

// statPatterns tolerate the misreads Tesseract produces on the condensed
// stat labels (French UI); "cuounmce" is a recurring read of ENDURANCE.
var statPatterns = map[string]*regexp.Regexp{
	"global_power": regexp.MustCompile(`(?i)(?:PUISSANCE\s*GLOBALE|PUIS[.\s]*GLOB)[^\d]*(\d{2,3})`),
	"agility":      regexp.MustCompile(`(?i)(?:AGILIT[EÉ]|AGI)[^\d]*(\d{2,3})`),
	"endurance":    regexp.MustCompile(`(?i)(?:ENDUR(?:ANCE)?|END(?:UR)?|cuounmce)[^\d]*(\d{2,3})`),
	"serve":        regexp.MustCompile(`(?i)(?:SERVICE|SERV)[^\d]*(\d{2,3})`),
	"volley":       regexp.MustCompile(`(?i)(?:VOL[EÉ]E|VOL)[^\d]*(\d{2,3})`),
	"forehand":     regexp.MustCompile(`(?i)(?:COUP\s*DROIT|CD)[^\d]*(\d{2,3})`),
	"backhand":     regexp.MustCompile(`(?i)(?:REVERS|REV)[^\d]*(\d{2,3})`),
}

var (
	// progressBarPattern matches card upgrade counters like "257/300" that
	// would otherwise be mistaken for levels.
	progressBarPattern = regexp.MustCompile(`\d+/\d+`)

	// cardLevelPattern finds "Le Samourai 12" style name-level pairs after
	// articles are stripped.
	cardLevelPattern = regexp.MustCompile(`(?:le |la |l['` + "`" + `’])?(\w{3,})[\s:]*(\d{1,2})\b`)
)

// parseStats fills the header and attribute fields from the stats pass text.
func parseStats(text string, result *domain.ExtractionResult) {
	if m := namePointsPattern.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		result.CharacterName = &name
		if points, err := strconv.Atoi(m[2]); err == nil {
			result.TrophyPoints = &points
		}
	} else if m := nameOnlyPattern.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		result.CharacterName = &name
		result.Warnings = append(result.Warnings, WarnPointsNotDetected)
	} else {
		result.Warnings = append(result.Warnings, WarnNameNotDetected)
	}

	for attr, pattern := range statPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			result.Warnings = append(result.Warnings, attr+": not detected")
			continue
		}
		value, err := strconv.Atoi(m[1])
		if err != nil || value < minStatValue || value > maxStatValue {
			result.Warnings = append(result.Warnings, attr+": value out of range")
			continue
		}
		setStat(result, attr, value)
	}
}

func setStat(result *domain.ExtractionResult, attr string, value int) {
	v := value
	switch attr {
	case "global_power":
		result.GlobalPower = &v
	case "agility":
		result.Agility = &v
	case "endurance":
		result.Endurance = &v
	case "serve":
		result.Serve = &v
	case "volley":
		result.Volley = &v
	case "forehand":
		result.Forehand = &v
	case "backhand":
		result.Backhand = &v
	}
}

// parseEquipment resolves card names, preferring name-level pairs over bare
// name mentions, and returns one entry per detected slot.
func parseEquipment(resolver *catalog.Resolver, text string) map[int]domain.EquipmentItem {
	normalized := catalog.Normalize(text)
	cleaned := progressBarPattern.ReplaceAllString(normalized, "")

	found := make(map[int]domain.EquipmentItem)

	for _, m := range cardLevelPattern.FindAllStringSubmatch(cleaned, -1) {
		level, err := strconv.Atoi(m[2])
		if err != nil || level < minPlausibleLevel || level > maxPlausibleLevel {
			continue
		}
		match, ok := resolver.Resolve(m[1])
		if !ok {
			continue
		}
		if _, taken := found[match.Slot]; taken {
			continue
		}
		lvl := level
		found[match.Slot] = domain.EquipmentItem{Slot: match.Slot, Name: match.Name, Level: &lvl}
	}

	// Names mentioned without a readable level still fill their slot.
	for slot, match := range resolver.FindAll(cleaned) {
		if _, taken := found[slot]; taken {
			continue
		}
		found[slot] = domain.EquipmentItem{Slot: slot, Name: match.Name}
	}

	return found
}

// parseBadgeLevel pulls the first plausible card level out of raw badge OCR.
var badgeDigitsPattern = regexp.MustCompile(`(\d{1,2})`)

func parseBadgeLevel(text string) (int, bool) {
	for _, m := range badgeDigitsPattern.FindAllStringSubmatch(text, -1) {
		level, err := strconv.Atoi(m[1])
		if err == nil && level >= minPlausibleLevel && level <= maxPlausibleLevel {
			return level, true
		}
	}
	return 0, false
}
