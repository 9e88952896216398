package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestRegistryRegisterAndHandle(t *testing.T) {
	registry := NewCommandRegistry()

	called := false
	registry.Register(&discordgo.ApplicationCommand{Name: "capture"}, func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		called = true
	})

	interaction := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{Name: "capture"},
		},
	}
	registry.Handle(nil, interaction, nil)
	assert.True(t, called)
}

func TestRegistryIgnoresUnknownCommand(t *testing.T) {
	registry := NewCommandRegistry()

	interaction := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{Name: "nope"},
		},
	}
	// must not panic
	registry.Handle(nil, interaction, nil)
}

func TestCommandsEqual(t *testing.T) {
	base := func() *discordgo.ApplicationCommand {
		return &discordgo.ApplicationCommand{
			Name:        "evolution",
			Description: "desc",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "player", Description: "p", Required: true},
			},
		}
	}

	t.Run("identical sets match", func(t *testing.T) {
		assert.True(t, commandsEqual(
			[]*discordgo.ApplicationCommand{base()},
			[]*discordgo.ApplicationCommand{base()},
		))
	})

	t.Run("different description", func(t *testing.T) {
		changed := base()
		changed.Description = "other"
		assert.False(t, commandsEqual(
			[]*discordgo.ApplicationCommand{base()},
			[]*discordgo.ApplicationCommand{changed},
		))
	})

	t.Run("option became optional", func(t *testing.T) {
		changed := base()
		changed.Options[0].Required = false
		assert.False(t, commandsEqual(
			[]*discordgo.ApplicationCommand{base()},
			[]*discordgo.ApplicationCommand{changed},
		))
	})

	t.Run("missing command", func(t *testing.T) {
		assert.False(t, commandsEqual(
			[]*discordgo.ApplicationCommand{base()},
			[]*discordgo.ApplicationCommand{base(), {Name: "extra"}},
		))
	})
}

func TestSetupCommandsRegistersAll(t *testing.T) {
	b := &Bot{Registry: NewCommandRegistry()}
	b.SetupCommands()

	for _, name := range []string{"ping", "capture", "player", "evolution", "compare", "queue"} {
		assert.Contains(t, b.Registry.Commands, name)
		assert.Contains(t, b.Registry.Handlers, name)
	}
}
