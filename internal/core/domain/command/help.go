package command

import (
	"context"
	"fmt"
	"memberbot/internal/core/domain"
	"memberbot/internal/core/port"
	"strings"
)

type Help struct {
	registry port.CommandRegistry
	sender   port.ChannelSender
	prefix   string
	command  string
}

func NewHelp(registry port.CommandRegistry, sender port.ChannelSender, prefix, command string) *Help {
	return &Help{registry: registry, sender: sender, prefix: prefix, command: command}
}

func (h *Help) GetCommand() string {
	return h.command
}

func (h *Help) GetDescription() string {
	return "list available commands"
}

func (h *Help) Respond(ctx context.Context, cc *domain.CommandContext, _ string) error {
	sb := &strings.Builder{}

	_, err := sb.WriteString("Available commands:\n")
	if err != nil {
		return fmt.Errorf("failed to construct response: %w", err)
	}

	for _, name := range h.registry.ListCommands() {
		cmd, err := h.registry.Get(name)
		if err != nil {
			continue
		}

		_, err = fmt.Fprintf(sb, " - %s%s: %s\n", h.prefix, name, cmd.GetDescription())
		if err != nil {
			return fmt.Errorf("failed to construct response: %w", err)
		}
	}

	err = h.sender.SendText(ctx, cc.Channel.ID, sb.String())
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}
