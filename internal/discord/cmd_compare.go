package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// CompareCommand returns the compare command definition and handler
func CompareCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "compare",
		Description: "Compare un personnage entre tous les joueurs suivis",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "character",
				Description: "Nom du personnage Tennis Clash (ex: Mei-Li)",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		ctx := context.Background()
		characterName := optionMap(i)["character"].StringValue()

		snapshots, err := svc.Snapshots.Compare(ctx, characterName)
		if err != nil {
			slog.Error("Failed to compare snapshots", "error", err)
			editResponse(s, i, MsgGenericError)
			return
		}
		if len(snapshots) == 0 {
			editResponse(s, i, fmt.Sprintf(MsgCompareNoData, characterName))
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🏆 %s", characterName),
			Description: fmt.Sprintf("%d joueurs", len(snapshots)),
			Color:       ColorGold,
		}

		for rank, snap := range snapshots {
			if rank >= MaxCompareShown {
				break
			}
			name := snap.SubjectName
			if name == "" {
				name = fmt.Sprintf("#%d", snap.SubjectID)
			}
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   fmt.Sprintf("%s %s", CompareMedal(rank+1), name),
				Value:  FormatCompareEntry(snap),
				Inline: false,
			})
		}

		editResponseEmbed(s, i, embed)
	}

	return cmd, handler
}
