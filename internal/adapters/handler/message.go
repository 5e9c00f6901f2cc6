package handler

import (
	"fmt"
	"memberbot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

type ChannelResolver interface {
	// ChannelName returns the display name of a channel.
	ChannelName(channelID string) (string, error)
}

type Enqueuer interface {
	Enqueue(ev Event) bool
}

// Message converts gateway message events into domain messages and queues them for dispatch.
type Message struct {
	channels ChannelResolver
	queue    Enqueuer
}

func NewMessage(channels ChannelResolver, queue Enqueuer) *Message {
	return &Message{channels: channels, queue: queue}
}

func (h *Message) Handle(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil {
		return
	}

	eventID, err := uuid.NewV4()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate event id")
		return
	}

	l := log.With().
		Str("eventId", eventID.String()).
		Str("messageId", m.ID).
		Str("channelId", m.ChannelID).
		Logger()

	channelName, err := h.channels.ChannelName(m.ChannelID)
	if err != nil {
		l.Warn().Err(err).Msg("could not resolve channel name")
	}

	message := toDomainMessage(m.Message, channelName)
	l.Debug().Str("source", string(message.Source)).Str("message", message.Content).Msg("received message")

	if !h.queue.Enqueue(Event{Message: message, Logger: l}) {
		l.Warn().Msg("dispatch queue full, dropping message")
	}
}

func toDomainMessage(m *discordgo.Message, channelName string) *domain.Message {
	message := &domain.Message{
		ID:        m.ID,
		GuildID:   m.GuildID,
		Channel:   domain.Channel{ID: m.ChannelID, Name: channelName},
		Content:   m.Content,
		Timestamp: m.Timestamp,
		Source:    classifySource(m),
		JumpURL:   jumpURL(m.GuildID, m.ChannelID, m.ID),
	}

	if m.Author != nil {
		message.Author = domain.Author{ID: m.Author.ID, Name: m.Author.String()}
	}

	for _, a := range m.Attachments {
		if a == nil {
			continue
		}
		message.Attachments = append(message.Attachments, domain.Attachment{URL: a.URL, Filename: a.Filename})
	}

	return message
}

func classifySource(m *discordgo.Message) domain.Source {
	switch {
	case m.WebhookID != "":
		return domain.Webhook
	case m.Author == nil:
		return domain.System
	case m.Author.Bot:
		return domain.Bot
	case m.Type != discordgo.MessageTypeDefault && m.Type != discordgo.MessageTypeReply:
		return domain.System
	default:
		return domain.User
	}
}

func jumpURL(guildID, channelID, messageID string) string {
	if guildID == "" {
		guildID = "@me"
	}

	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guildID, channelID, messageID)
}

// SessionChannels resolves channel names from the session state cache, falling back to the REST API.
type SessionChannels struct {
	session *discordgo.Session
}

func NewSessionChannels(session *discordgo.Session) *SessionChannels {
	return &SessionChannels{session: session}
}

func (c *SessionChannels) ChannelName(channelID string) (string, error) {
	if c.session.State != nil {
		if ch, err := c.session.State.Channel(channelID); err == nil {
			return ch.Name, nil
		}
	}

	ch, err := c.session.Channel(channelID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch channel %s: %w", channelID, err)
	}

	return ch.Name, nil
}
