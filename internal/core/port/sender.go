package port

import (
	"context"
	"memberbot/internal/core/domain"
)

type ChannelSender interface {
	// SendText posts a plain text message to a channel.
	SendText(ctx context.Context, channelID string, text string) error
	// SendEmbed posts a rich embed to a channel.
	SendEmbed(ctx context.Context, channelID string, embed *domain.Embed) error
}
