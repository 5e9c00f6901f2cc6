package service

import (
	"context"
	"errors"
	"fmt"
	"memberbot/internal/core/domain"
	"memberbot/internal/core/port"
	"time"

	"github.com/rs/zerolog"
)

type ApplicationService struct {
	store  port.ApplicationStore
	sender port.ChannelSender
	now    func() time.Time
}

func NewApplicationService(store port.ApplicationStore, sender port.ChannelSender) *ApplicationService {
	return &ApplicationService{store: store, sender: sender, now: time.Now}
}

// Submit stores the application carried by message and posts its summary embed to the originating channel.
func (s *ApplicationService) Submit(ctx context.Context, message *domain.Message) error {
	l := zerolog.Ctx(ctx)

	app, err := domain.NewApplication(message)
	if err != nil {
		return err
	}

	id, err := s.store.Create(ctx, app)
	if err != nil {
		return fmt.Errorf("failed to store application: %w", err)
	}
	app.ID = id

	l.Info().Int64("applicationId", id).Str("authorId", app.AuthorID).Msg("application received")

	if len(message.Attachments) > 1 {
		l.Debug().Int("attachments", len(message.Attachments)).Msg("ignoring additional attachments")
	}

	err = s.sender.SendEmbed(ctx, message.Channel.ID, app.Embed())
	if err != nil {
		return fmt.Errorf("failed to send application embed: %w", err)
	}

	return nil
}

func (s *ApplicationService) Get(ctx context.Context, id int64) (*domain.Application, error) {
	return s.store.Get(ctx, id)
}

// Review moves a pending application to Accepted or Rejected.
func (s *ApplicationService) Review(ctx context.Context, id int64, status domain.ApplicationStatus,
	moderatorID string) (*domain.Application, error) {
	if status != domain.Accepted && status != domain.Rejected {
		return nil, fmt.Errorf("invalid review status %q: %w", status, domain.ErrBadArguments)
	}

	err := s.store.UpdateStatus(ctx, id, status, moderatorID, s.now())
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) || errors.Is(err, domain.ErrAlreadyReviewed) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to update application %d: %w", id, err)
	}

	zerolog.Ctx(ctx).Info().
		Int64("applicationId", id).
		Str("status", string(status)).
		Str("moderatorId", moderatorID).
		Msg("application reviewed")

	return s.store.Get(ctx, id)
}

func (s *ApplicationService) ListPending(ctx context.Context) ([]domain.Application, error) {
	return s.store.List(ctx, domain.Pending)
}
