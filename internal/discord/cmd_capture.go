package discord

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// maxImageBytes caps screenshot downloads. Tennis Clash screenshots are a
// couple of MB at most.
const maxImageBytes = 8 << 20

// CaptureCommand returns the capture command definition and handler
func CaptureCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "capture",
		Description: "Analyse une capture d'écran Tennis Clash et enregistre les stats",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionAttachment,
				Name:        "image",
				Description: "Capture d'écran du profil",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "player",
				Description: "Joueur auquel rattacher les stats (sinon demandé à la validation)",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "build",
				Description: "Type de build (sinon demandé à la validation)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		ctx := context.Background()
		user := interactionUser(i)

		attachment := resolvedAttachment(i)
		if attachment == nil {
			editResponse(s, i, MsgNoImage)
			return
		}

		ext := strings.ToLower(filepath.Ext(attachment.Filename))
		if !allowedImageExtensions[ext] {
			editResponse(s, i, MsgInvalidImage)
			return
		}

		imageData, err := downloadAttachment(attachment.URL)
		if err != nil {
			slog.Error("Failed to download attachment", "error", err, "url", attachment.URL)
			editResponse(s, i, MsgDownloadError)
			return
		}

		options := optionMap(i)

		var subjectID *int64
		if opt, ok := options["player"]; ok {
			id, err := resolveSubjectByName(ctx, svc, user.ID, opt.StringValue())
			if err != nil {
				editResponse(s, i, fmt.Sprintf(MsgUnknownPlayer, opt.StringValue()))
				return
			}
			subjectID = &id
		}

		var buildLabel *string
		if opt, ok := options["build"]; ok {
			if label := strings.TrimSpace(opt.StringValue()); label != "" {
				buildLabel = &label
			}
		}

		capture := newCapture(user, subjectID, buildLabel, imageData, attachment.Filename)
		id, pending, err := svc.Queue.Enqueue(ctx, capture)
		if err != nil {
			slog.Error("Failed to enqueue capture", "error", err)
			editResponse(s, i, MsgGenericError)
			return
		}

		if svc.Notifier != nil {
			svc.Notifier.CaptureEnqueued(capture, id, pending)
		}

		editResponse(s, i, fmt.Sprintf(MsgQueuedFmt, pending))
	}

	return cmd, handler
}

func resolvedAttachment(i *discordgo.InteractionCreate) *discordgo.MessageAttachment {
	data := i.ApplicationCommandData()
	if data.Resolved == nil {
		return nil
	}
	for _, opt := range data.Options {
		if opt.Type == discordgo.ApplicationCommandOptionAttachment {
			if att, ok := data.Resolved.Attachments[opt.Value.(string)]; ok {
				return att
			}
		}
	}
	return nil
}

func downloadAttachment(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty attachment")
	}
	return data, nil
}
