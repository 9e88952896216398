package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

// PlayerCommand returns the player management command definition and handler
func PlayerCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "player",
		Description: "Gère tes joueurs suivis",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "add",
				Description: "Enregistre un nouveau joueur",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Nom du joueur",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "Liste tes joueurs enregistrés",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		ctx := context.Background()
		user := interactionUser(i)

		sub := i.ApplicationCommandData().Options[0]
		switch sub.Name {
		case "add":
			handlePlayerAdd(ctx, s, i, svc, user, sub.Options[0].StringValue())
		case "list":
			handlePlayerList(ctx, s, i, svc, user)
		}
	}

	return cmd, handler
}

func handlePlayerAdd(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services, user *discordgo.User, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		editResponse(s, i, MsgGenericError)
		return
	}

	subj, err := svc.Subjects.Create(ctx, user.ID, name)
	if err != nil {
		slog.Error("Failed to create subject", "error", err)
		editResponse(s, i, MsgGenericError)
		return
	}

	editResponse(s, i, fmt.Sprintf(MsgPlayerAdded, subj.Name))
}

func handlePlayerList(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services, user *discordgo.User) {
	subjects, err := svc.Subjects.List(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNoSubjects) {
			editResponse(s, i, MsgNoPlayers)
			return
		}
		slog.Error("Failed to list subjects", "error", err)
		editResponse(s, i, MsgGenericError)
		return
	}

	var b strings.Builder
	for _, subj := range subjects {
		fmt.Fprintf(&b, "• %s\n", subj.Name)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "👥 Joueurs suivis",
		Description: b.String(),
		Color:       ColorBlue,
	}
	editResponseEmbed(s, i, embed)
}
