package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

var statusEmoji = map[domain.CaptureStatus]string{
	domain.CaptureStatusPending:   "⏳",
	domain.CaptureStatusCompleted: "🔔",
	domain.CaptureStatusValidated: "✅",
	domain.CaptureStatusRejected:  "🗑️",
	domain.CaptureStatusFailed:    "❌",
}

// QueueCommand returns the queue command definition and handler
func QueueCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "queue",
		Description: "Affiche l'état de la file d'analyse et tes dernières captures",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		ctx := context.Background()
		user := interactionUser(i)

		pending, err := svc.Queue.PendingCount(ctx)
		if err != nil {
			slog.Error("Failed to count pending captures", "error", err)
			editResponse(s, i, MsgGenericError)
			return
		}

		recent, err := svc.Queue.RecentBySubmitter(ctx, user.ID, MaxRecentCaptures)
		if err != nil {
			slog.Error("Failed to list recent captures", "error", err)
			editResponse(s, i, MsgGenericError)
			return
		}

		embed := &discordgo.MessageEmbed{
			Title: "📋 File d'analyse",
			Color: ColorBlue,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "En attente", Value: fmt.Sprintf("%d", pending), Inline: true},
			},
		}

		if len(recent) == 0 {
			embed.Description = MsgQueueEmpty
		} else {
			var b strings.Builder
			for _, c := range recent {
				emoji := statusEmoji[c.Status]
				fmt.Fprintf(&b, "%s #%d — %s (%s)\n",
					emoji, c.ID, c.Status, c.SubmittedAt.Format("02/01 15:04"))
			}
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   "Tes dernières captures",
				Value:  b.String(),
				Inline: false,
			})
		}

		editResponseEmbed(s, i, embed)
	}

	return cmd, handler
}
