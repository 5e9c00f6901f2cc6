package command

import (
	"context"
	"fmt"
	"memberbot/internal/core/domain"
	"memberbot/internal/core/port"

	"github.com/rs/zerolog"
)

// Review sets the status of a pending application. One instance serves accept, another reject.
type Review struct {
	applications port.Applications
	authorizer   port.Authorizer
	sender       port.ChannelSender
	status       domain.ApplicationStatus
	command      string
}

func NewReview(applications port.Applications, authorizer port.Authorizer, sender port.ChannelSender,
	status domain.ApplicationStatus, command string) *Review {
	return &Review{
		applications: applications,
		authorizer:   authorizer,
		sender:       sender,
		status:       status,
		command:      command,
	}
}

func (r *Review) GetCommand() string {
	return r.command
}

func (r *Review) GetDescription() string {
	return fmt.Sprintf("mark a pending application as %s (moderators only)", r.status)
}

func (r *Review) Respond(ctx context.Context, cc *domain.CommandContext, args string) error {
	l := zerolog.Ctx(ctx)

	if !r.authorizer.IsModerator(cc.Message.Author.ID) {
		l.Info().Str("userId", cc.Message.Author.ID).Msg("review attempt by non-moderator")
		return fmt.Errorf("%s requires a moderator: %w", r.command, domain.ErrUnauthorized)
	}

	id, err := parseApplicationID(args)
	if err != nil {
		return err
	}

	app, err := r.applications.Review(ctx, id, r.status, cc.Message.Author.ID)
	if err != nil {
		return err
	}

	err = r.sender.SendText(ctx, cc.Channel.ID, fmt.Sprintf("Application #%d by %s is now %s.",
		app.ID, app.AuthorName, app.Status))
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	err = r.sender.SendEmbed(ctx, cc.Channel.ID, app.Embed())
	if err != nil {
		return fmt.Errorf("failed to send embed: %w", err)
	}

	return nil
}
