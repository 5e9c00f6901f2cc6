package service

import (
	"context"
	"fmt"
	"memberbot/internal/core/domain"
	"memberbot/internal/core/port"
)

// CommandResultReporter tells the channel when a known command failed. Unknown commands stay silent.
type CommandResultReporter struct {
	sender port.ChannelSender
}

func NewCommandResultReporter(sender port.ChannelSender) *CommandResultReporter {
	return &CommandResultReporter{sender: sender}
}

func (r *CommandResultReporter) OnExecuted(ctx context.Context, cmd *domain.CommandInfo,
	cc *domain.CommandContext, result domain.Result) error {
	if cmd == nil {
		return nil
	}

	if result.IsSuccess() {
		return nil
	}

	return r.sender.SendText(ctx, cc.Channel.ID, fmt.Sprintf("error: %s", result))
}
