// Package discord hosts the bot: slash commands for submitting and browsing
// captures, component-based validation dialogs, and admin notifications.
package discord

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/Lestat2Lioncourt/discord-bot/internal/queue"
	"github.com/Lestat2Lioncourt/discord-bot/internal/snapshot"
	"github.com/Lestat2Lioncourt/discord-bot/internal/subject"
)

// Services bundles everything command handlers may call.
type Services struct {
	Queue     queue.Service
	Snapshots snapshot.Service
	Subjects  subject.Service
	Notifier  *Notifier
}

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	GuildID  string
	Registry *CommandRegistry
	Services *Services
	Prompter *InteractionPrompter
}

// Config holds the bot configuration
type Config struct {
	Token          string
	AppID          string
	GuildID        string
	AdminChannelID string
}

// New creates a new Discord bot
func New(cfg Config, services *Services) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	if cfg.AdminChannelID != "" {
		services.Notifier = NewNotifier(s, cfg.AdminChannelID)
	}

	return &Bot{
		Session:  s,
		AppID:    cfg.AppID,
		GuildID:  cfg.GuildID,
		Registry: NewCommandRegistry(),
		Services: services,
		Prompter: NewInteractionPrompter(s),
	}, nil
}

// SetupCommands registers every slash command on the bot's registry.
func (b *Bot) SetupCommands() {
	builders := []func() (*discordgo.ApplicationCommand, CommandHandler){
		PingCommand,
		CaptureCommand,
		PlayerCommand,
		EvolutionCommand,
		CompareCommand,
		QueueCommand,
	}
	for _, build := range builders {
		cmd, handler := build()
		b.Registry.Register(cmd, handler)
	}
}

// Start starts the bot
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running")
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	b.Session.Close()
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if b.Registry != nil {
			b.Registry.Handle(s, i, b.Services)
		}
	case discordgo.InteractionMessageComponent:
		b.Prompter.HandleComponent(s, i)
	}
}
