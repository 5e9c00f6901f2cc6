package command

import (
	"context"
	"fmt"
	"memberbot/internal/core/domain"
	"memberbot/internal/core/port"
)

type Ping struct {
	sender  port.ChannelSender
	command string
}

func NewPing(sender port.ChannelSender, command string) *Ping {
	return &Ping{sender: sender, command: command}
}

func (p *Ping) GetCommand() string {
	return p.command
}

func (p *Ping) GetDescription() string {
	return "check that the bot is alive"
}

func (p *Ping) Respond(ctx context.Context, cc *domain.CommandContext, _ string) error {
	err := p.sender.SendText(ctx, cc.Channel.ID, "Pong!")
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}
