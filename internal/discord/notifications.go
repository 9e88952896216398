package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

// Notifier posts operational events to the admin channel.
type Notifier struct {
	session   *discordgo.Session
	channelID string
}

// NewNotifier creates a notifier for the given channel.
func NewNotifier(s *discordgo.Session, channelID string) *Notifier {
	return &Notifier{session: s, channelID: channelID}
}

// CaptureEnqueued announces a new submission and the resulting queue depth.
func (n *Notifier) CaptureEnqueued(capture *domain.Capture, captureID int64, pending int) {
	embed := &discordgo.MessageEmbed{
		Title: "📥 Nouvelle capture",
		Color: ColorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Membre", Value: capture.SubmitterName, Inline: true},
			{Name: "Capture", Value: fmt.Sprintf("#%d", captureID), Inline: true},
			{Name: "File d'attente", Value: fmt.Sprintf("%d", pending), Inline: true},
		},
	}
	if capture.SubjectID != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Joueur", Value: fmt.Sprintf("#%d", *capture.SubjectID), Inline: true,
		})
	}
	if capture.BuildLabel != nil && *capture.BuildLabel != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Build", Value: *capture.BuildLabel, Inline: true,
		})
	}

	if _, err := n.session.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
		slog.Error("Failed to send admin notification", "error", err)
	}
}
