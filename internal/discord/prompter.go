package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
	"github.com/Lestat2Lioncourt/discord-bot/internal/logger"
	"github.com/Lestat2Lioncourt/discord-bot/internal/session"
)

const (
	componentPrefix = "capture"

	actionConfirm = "confirm"
	actionReject  = "reject"
	actionCancel  = "cancel"
	actionSubject = "subject"
	actionBuild   = "build"

	buildValueAuto = "auto"

	maxPreviewWarnings = 5
)

// InteractionPrompter implements session.Prompter over Discord DMs with
// buttons and select menus. Component custom ids carry the capture id so a
// reply can be routed back to the session goroutine waiting for it.
type InteractionPrompter struct {
	session *discordgo.Session

	mu      sync.Mutex
	waiters map[string]chan string
}

// NewInteractionPrompter creates a prompter bound to the given session.
func NewInteractionPrompter(s *discordgo.Session) *InteractionPrompter {
	return &InteractionPrompter{
		session: s,
		waiters: make(map[string]chan string),
	}
}

// HandleComponent routes a button or select-menu interaction to the session
// waiting on it. Interactions with no waiter (stale dialogs) are ignored.
func (p *InteractionPrompter) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()

	parts := strings.SplitN(data.CustomID, ":", 3)
	if len(parts) != 3 || parts[0] != componentPrefix {
		return
	}
	key := parts[0] + ":" + parts[1]

	value := parts[2]
	if len(data.Values) > 0 {
		value = data.Values[0]
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}); err != nil {
		logger.FromContext(context.Background()).Error(ErrMsgAckComponent, "error", err)
	}

	p.mu.Lock()
	waiter, ok := p.waiters[key]
	p.mu.Unlock()
	if !ok {
		return
	}

	select {
	case waiter <- value:
	default:
	}
}

func (p *InteractionPrompter) ConfirmExtraction(ctx context.Context, capture *domain.Capture, timeout time.Duration) (session.Decision, error) {
	channelID, err := p.dmChannel(capture.SubmitterID)
	if err != nil {
		return session.DecisionReject, err
	}

	embed := previewEmbed(capture)
	key := waiterKey(capture.ID)

	msg, err := p.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    MsgBtnConfirm,
					Style:    discordgo.SuccessButton,
					CustomID: key + ":" + actionConfirm,
				},
				discordgo.Button{
					Label:    MsgBtnCancel,
					Style:    discordgo.DangerButton,
					CustomID: key + ":" + actionReject,
				},
			}},
		},
	})
	if err != nil {
		return session.DecisionReject, fmt.Errorf(ErrMsgSendPrompt, err)
	}

	value, err := p.wait(ctx, key, timeout)
	if err != nil {
		p.expireDialog(channelID, msg.ID)
		return session.DecisionReject, err
	}

	if value == actionConfirm {
		return session.DecisionConfirm, nil
	}
	return session.DecisionReject, nil
}

func (p *InteractionPrompter) SelectSubject(ctx context.Context, capture *domain.Capture, subjects []*domain.Subject, timeout time.Duration) (int64, error) {
	channelID, err := p.dmChannel(capture.SubmitterID)
	if err != nil {
		return 0, err
	}

	options := make([]discordgo.SelectMenuOption, 0, len(subjects))
	for _, subj := range subjects {
		options = append(options, discordgo.SelectMenuOption{
			Label: subj.Name,
			Value: strconv.FormatInt(subj.ID, 10),
		})
	}

	key := waiterKey(capture.ID)
	msg, err := p.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: MsgSelectPlayer,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    key + ":" + actionSubject,
					Placeholder: MsgSelectPlayer,
					Options:     options,
				},
			}},
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    MsgBtnCancel,
					Style:    discordgo.SecondaryButton,
					CustomID: key + ":" + actionCancel,
				},
			}},
		},
	})
	if err != nil {
		return 0, fmt.Errorf(ErrMsgSendPrompt, err)
	}

	value, err := p.wait(ctx, key, timeout)
	if err != nil {
		p.expireDialog(channelID, msg.ID)
		return 0, err
	}
	if value == actionCancel {
		// cancelling the selection leaves the capture for a later session
		p.expireDialog(channelID, msg.ID)
		return 0, session.ErrPromptTimeout
	}

	subjectID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBadSelection, value)
	}
	return subjectID, nil
}

func (p *InteractionPrompter) RequestBuildLabel(ctx context.Context, capture *domain.Capture, timeout time.Duration) (string, error) {
	channelID, err := p.dmChannel(capture.SubmitterID)
	if err != nil {
		return "", err
	}

	options := []discordgo.SelectMenuOption{
		{Label: "Automatique", Value: buildValueAuto},
		{Label: "Équilibré", Value: "Balanced"},
	}
	frenchAttributes := labelsFR.attributes
	for i, name := range domain.AttributeNames {
		options = append(options, discordgo.SelectMenuOption{
			Label: frenchAttributes[i],
			Value: name,
		})
	}

	key := waiterKey(capture.ID)
	msg, err := p.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: MsgSelectBuild,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    key + ":" + actionBuild,
					Placeholder: MsgSelectBuild,
					Options:     options,
				},
			}},
		},
	})
	if err != nil {
		return "", fmt.Errorf(ErrMsgSendPrompt, err)
	}

	value, err := p.wait(ctx, key, timeout)
	if err != nil {
		p.expireDialog(channelID, msg.ID)
		return "", err
	}
	if value == buildValueAuto {
		return "", nil
	}
	return value, nil
}

func (p *InteractionPrompter) NotifyOutcome(ctx context.Context, capture *domain.Capture, outcome session.Outcome) error {
	channelID, err := p.dmChannel(capture.SubmitterID)
	if err != nil {
		return err
	}

	var content string
	switch outcome {
	case session.OutcomeStored:
		content = MsgOutcomeStored
	case session.OutcomeDuplicate:
		content = MsgOutcomeDup
	case session.OutcomeRejected:
		content = MsgOutcomeReject
	case session.OutcomeNoSubjects:
		content = MsgNoPlayers
	default:
		content = MsgGenericError
	}

	if _, err := p.session.ChannelMessageSend(channelID, content); err != nil {
		return fmt.Errorf(ErrMsgSendPrompt, err)
	}
	return nil
}

// wait blocks until the submitter clicks something, the timeout elapses, or
// the context ends.
func (p *InteractionPrompter) wait(ctx context.Context, key string, timeout time.Duration) (string, error) {
	ch := make(chan string, 1)
	p.mu.Lock()
	p.waiters[key] = ch
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		delete(p.waiters, key)
		p.mu.Unlock()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case value := <-ch:
		return value, nil
	case <-timer.C:
		return "", session.ErrPromptTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (p *InteractionPrompter) dmChannel(userID string) (string, error) {
	channel, err := p.session.UserChannelCreate(userID)
	if err != nil {
		return "", fmt.Errorf(ErrMsgOpenDM, err)
	}
	return channel.ID, nil
}

// expireDialog strips the components from a dialog message so stale buttons
// cannot be clicked, and explains what happened.
func (p *InteractionPrompter) expireDialog(channelID, messageID string) {
	content := MsgTimeout
	empty := []discordgo.MessageComponent{}
	if _, err := p.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    channelID,
		ID:         messageID,
		Content:    &content,
		Components: &empty,
		Embeds:     &[]*discordgo.MessageEmbed{},
	}); err != nil {
		logger.FromContext(context.Background()).Warn(ErrMsgExpireDialog, "error", err)
	}
}

func waiterKey(captureID int64) string {
	return fmt.Sprintf("%s:%d", componentPrefix, captureID)
}

func previewEmbed(capture *domain.Capture) *discordgo.MessageEmbed {
	result := capture.Result

	color := ColorBlue
	if result.Confidence < lowConfidencePreview {
		color = ColorOrange
	}

	embed := &discordgo.MessageEmbed{
		Title:       MsgPreviewTitle,
		Description: FormatStatsPreview(result, "FR"),
		Color:       color,
	}

	if len(result.Warnings) > 0 {
		warnings := result.Warnings
		if len(warnings) > maxPreviewWarnings {
			warnings = warnings[:maxPreviewWarnings]
		}
		var b strings.Builder
		for _, w := range warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   labelsFR.warnings,
			Value:  b.String(),
			Inline: false,
		})
	}

	return embed
}
