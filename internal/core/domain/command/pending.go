package command

import (
	"context"
	"fmt"
	"memberbot/internal/core/domain"
	"memberbot/internal/core/port"
	"strings"
)

type Pending struct {
	applications port.Applications
	sender       port.ChannelSender
	command      string
}

func NewPending(applications port.Applications, sender port.ChannelSender, command string) *Pending {
	return &Pending{applications: applications, sender: sender, command: command}
}

func (p *Pending) GetCommand() string {
	return p.command
}

func (p *Pending) GetDescription() string {
	return "list applications awaiting review"
}

func (p *Pending) Respond(ctx context.Context, cc *domain.CommandContext, _ string) error {
	apps, err := p.applications.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list applications: %w", err)
	}

	if len(apps) == 0 {
		return p.send(ctx, cc, "no pending applications")
	}

	sb := &strings.Builder{}
	for _, app := range apps {
		_, err = fmt.Fprintf(sb, "#%d %s %s\n", app.ID, app.AuthorName, app.JumpURL)
		if err != nil {
			return fmt.Errorf("failed to construct response: %w", err)
		}
	}

	return p.send(ctx, cc, sb.String())
}

func (p *Pending) send(ctx context.Context, cc *domain.CommandContext, text string) error {
	err := p.sender.SendText(ctx, cc.Channel.ID, text)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}
