package command

import (
	"context"
	"fmt"
	"memberbot/internal/core/domain"
	"memberbot/internal/core/port"
	"strconv"
	"strings"
)

type Application struct {
	applications port.Applications
	sender       port.ChannelSender
	command      string
}

func NewApplication(applications port.Applications, sender port.ChannelSender, command string) *Application {
	return &Application{applications: applications, sender: sender, command: command}
}

func (a *Application) GetCommand() string {
	return a.command
}

func (a *Application) GetDescription() string {
	return "show an application and its current status"
}

func (a *Application) Respond(ctx context.Context, cc *domain.CommandContext, args string) error {
	id, err := parseApplicationID(args)
	if err != nil {
		return err
	}

	app, err := a.applications.Get(ctx, id)
	if err != nil {
		return err
	}

	err = a.sender.SendEmbed(ctx, cc.Channel.ID, app.Embed())
	if err != nil {
		return fmt.Errorf("failed to send embed: %w", err)
	}

	return nil
}

func parseApplicationID(args string) (int64, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return 0, fmt.Errorf("missing application id: %w", domain.ErrBadArguments)
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(fields[0], "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid application id %q: %w", fields[0], domain.ErrBadArguments)
	}

	return id, nil
}
