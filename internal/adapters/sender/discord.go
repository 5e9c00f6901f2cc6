package sender

import (
	"context"
	"memberbot/internal/core/domain"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// DiscordMessageLimit is the maximum number of characters in a single Discord message.
const DiscordMessageLimit = 2000

type DiscordSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Discord struct {
	session DiscordSession
}

func NewDiscord(session DiscordSession) *Discord {
	return &Discord{session: session}
}

func (s *Discord) SendText(ctx context.Context, channelID string, text string) error {
	for _, chunk := range splitMessage(text, DiscordMessageLimit) {
		_, err := s.session.ChannelMessageSend(channelID, chunk, discordgo.WithContext(ctx))
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Str("channelId", channelID).Msg("failed to send message")
			return err
		}
	}

	return nil
}

func (s *Discord) SendEmbed(ctx context.Context, channelID string, embed *domain.Embed) error {
	_, err := s.session.ChannelMessageSendEmbed(channelID, toMessageEmbed(embed), discordgo.WithContext(ctx))
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("channelId", channelID).Msg("failed to send embed")
		return err
	}

	return nil
}

func toMessageEmbed(embed *domain.Embed) *discordgo.MessageEmbed {
	me := &discordgo.MessageEmbed{
		Color:  embed.Color,
		Fields: make([]*discordgo.MessageEmbedField, 0, len(embed.Fields)),
	}

	for _, f := range embed.Fields {
		me.Fields = append(me.Fields, &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}

	if embed.ThumbnailURL != "" {
		me.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: embed.ThumbnailURL}
	}

	if embed.Footer != "" {
		me.Footer = &discordgo.MessageEmbedFooter{Text: embed.Footer}
	}

	if !embed.Timestamp.IsZero() {
		me.Timestamp = embed.Timestamp.Format(time.RFC3339)
	}

	return me
}

// splitMessage cuts msg into chunks of at most maxLen bytes, preferring newline boundaries.
func splitMessage(msg string, maxLen int) []string {
	if len(msg) <= maxLen {
		return []string{msg}
	}

	var chunks []string
	for len(msg) > 0 {
		if len(msg) <= maxLen {
			chunks = append(chunks, msg)
			break
		}

		cut := maxLen
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		if cut == 0 {
			cut = maxLen
		}
		if idx := strings.LastIndex(msg[:maxLen], "\n"); idx > maxLen/2 {
			cut = idx + 1
		}

		chunks = append(chunks, msg[:cut])
		msg = msg[cut:]
	}

	return chunks
}
