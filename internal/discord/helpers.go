package discord

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

// interactionUser returns the invoking user whether the command came from a
// guild channel or a DM.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// optionMap indexes a command's options by name.
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

func editResponse(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

func editResponseEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send embed", "error", err)
	}
}

// newCapture builds a pending capture from a submission.
func newCapture(user *discordgo.User, subjectID *int64, buildLabel *string, imageData []byte, filename string) *domain.Capture {
	return &domain.Capture{
		SubmitterID:   user.ID,
		SubmitterName: user.Username,
		SubjectID:     subjectID,
		BuildLabel:    buildLabel,
		ImageData:     imageData,
		ImageFilename: filename,
		Status:        domain.CaptureStatusPending,
	}
}

// resolveSubjectByName finds the owner's subject with the given name,
// case-insensitively.
func resolveSubjectByName(ctx context.Context, svc *Services, ownerID, name string) (int64, error) {
	subjects, err := svc.Subjects.List(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	for _, subj := range subjects {
		if strings.EqualFold(subj.Name, name) {
			return subj.ID, nil
		}
	}
	return 0, domain.ErrSubjectNotFound
}

func respondMessage(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	}); err != nil {
		slog.Error("Failed to respond to interaction", "error", err)
	}
}
