package discord

import (
	"fmt"
	"strings"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

type previewLabels struct {
	character, points, power                string
	attributes                              [6]string
	equipment, confidence, warnings, levels string
}

var labelsFR = previewLabels{
	character:  "Personnage",
	points:     "Points",
	power:      "Puissance Globale",
	attributes: [6]string{"Agilité", "Endurance", "Service", "Volée", "Coup Droit", "Revers"},
	equipment:  "Équipement",
	confidence: "Confiance",
	warnings:   "Avertissements",
	levels:     "niv.",
}

var labelsEN = previewLabels{
	character:  "Character",
	points:     "Points",
	power:      "Global Power",
	attributes: [6]string{"Agility", "Endurance", "Serve", "Volley", "Forehand", "Backhand"},
	equipment:  "Equipment",
	confidence: "Confidence",
	warnings:   "Warnings",
	levels:     "lvl.",
}

// FormatStatsPreview renders an extraction result for the confirmation
// embed. Unreadable fields show as "?".
func FormatStatsPreview(result *domain.ExtractionResult, lang string) string {
	l := labelsFR
	if strings.EqualFold(lang, "EN") {
		l = labelsEN
	}

	charDisplay := formatStr(result.CharacterName)
	if result.CharacterLevel != nil {
		charDisplay += fmt.Sprintf(" (%s%d)", l.levels, *result.CharacterLevel)
	}

	lines := []string{
		fmt.Sprintf("**%s:** %s", l.character, charDisplay),
		fmt.Sprintf("**%s:** %s", l.points, formatInt(result.TrophyPoints)),
		"",
		fmt.Sprintf("**%s:** %s", l.power, formatInt(result.GlobalPower)),
	}

	attrs := result.Attributes()
	for i, label := range l.attributes {
		lines = append(lines, fmt.Sprintf("**%s:** %s", label, formatInt(attrs[i])))
	}

	if len(result.Equipment) > 0 {
		lines = append(lines, "", fmt.Sprintf("**%s:**", l.equipment))
		for slot := 1; slot <= domain.SlotCount; slot++ {
			item := result.EquipmentBySlot(slot)
			if item == nil {
				continue
			}
			lines = append(lines, formatEquipmentLine(domain.SlotName(slot), item, l.levels))
		}
	}

	lines = append(lines, "", fmt.Sprintf("**%s:** %.0f%%", l.confidence, result.Confidence*100))

	if len(result.Warnings) > 0 {
		lines = append(lines, fmt.Sprintf("\n**%s:** %d", l.warnings, len(result.Warnings)))
	}

	return strings.Join(lines, "\n")
}

func formatEquipmentLine(slotName string, item *domain.EquipmentItem, levelPrefix string) string {
	switch {
	case item.Name != "" && item.Level != nil:
		return fmt.Sprintf("  %s: %s (%s%d)", slotName, item.Name, levelPrefix, *item.Level)
	case item.Name != "":
		return fmt.Sprintf("  %s: %s", slotName, item.Name)
	case item.Level != nil:
		return fmt.Sprintf("  %s: ??? (%s%d)", slotName, levelPrefix, *item.Level)
	default:
		return fmt.Sprintf("  %s: ???", slotName)
	}
}

// FormatHistoryEntry renders one snapshot for the evolution embed.
func FormatHistoryEntry(s *domain.StatSnapshot) string {
	value := fmt.Sprintf(
		"Points: %s | Puissance: %s\nAGI:%s END:%s SER:%s VOL:%s\nCD:%s REV:%s",
		formatInt(s.TrophyPoints), formatInt(s.GlobalPower),
		formatInt(s.Agility), formatInt(s.Endurance),
		formatInt(s.Serve), formatInt(s.Volley),
		formatInt(s.Forehand), formatInt(s.Backhand))
	if s.BuildLabel != "" {
		value += "\nBuild: " + s.BuildLabel
	}
	return value
}

// FormatCompareEntry renders one snapshot for the comparison leaderboard.
func FormatCompareEntry(s *domain.StatSnapshot) string {
	return fmt.Sprintf("Puissance: **%s** | Points: %s\nBuild: %s",
		formatInt(s.GlobalPower), formatInt(s.TrophyPoints), orQuestionStr(s.BuildLabel))
}

// CompareMedal returns the rank marker for the comparison leaderboard.
func CompareMedal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("#%d", rank)
	}
}

func formatInt(v *int) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *v)
}

func formatStr(v *string) string {
	if v == nil || *v == "" {
		return "?"
	}
	return *v
}

func orQuestionStr(s string) string {
	if s == "" {
		return "?"
	}
	return s
}
