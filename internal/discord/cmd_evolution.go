package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

// EvolutionCommand returns the evolution command definition and handler
func EvolutionCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "evolution",
		Description: "Affiche l'évolution des stats d'un joueur",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "player",
				Description: "Nom du joueur suivi",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		ctx := context.Background()
		user := interactionUser(i)
		playerName := optionMap(i)["player"].StringValue()

		subjectID, err := resolveSubjectByName(ctx, svc, user.ID, playerName)
		if err != nil {
			if errors.Is(err, domain.ErrNoSubjects) || errors.Is(err, domain.ErrSubjectNotFound) {
				editResponse(s, i, fmt.Sprintf(MsgUnknownPlayer, playerName))
				return
			}
			slog.Error("Failed to resolve subject", "error", err)
			editResponse(s, i, MsgGenericError)
			return
		}

		history, err := svc.Snapshots.History(ctx, subjectID, 0)
		if err != nil {
			slog.Error("Failed to load history", "error", err)
			editResponse(s, i, MsgGenericError)
			return
		}
		if len(history) == 0 {
			editResponse(s, i, fmt.Sprintf(MsgEvoNoData, playerName))
			return
		}

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("📈 Évolution de %s", playerName),
			Color: ColorBlue,
		}

		// newest first, capped
		shown := 0
		for idx := len(history) - 1; idx >= 0 && shown < MaxHistoryShown; idx-- {
			snap := history[idx]
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   snap.RecordedAt.Format("02/01/2006"),
				Value:  FormatHistoryEntry(snap),
				Inline: false,
			})
			shown++
		}

		if len(history) >= 2 {
			oldest, latest := 0, 0
			if p := history[0].GlobalPower; p != nil {
				oldest = *p
			}
			if p := history[len(history)-1].GlobalPower; p != nil {
				latest = *p
			}
			diff := latest - oldest
			sign := ""
			if diff >= 0 {
				sign = "+"
			}
			embed.Footer = &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Évolution puissance: %s%d (%d captures)", sign, diff, len(history)),
			}
		}

		editResponseEmbed(s, i, embed)
	}

	return cmd, handler
}
