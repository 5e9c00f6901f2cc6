package port

import (
	"context"
	"memberbot/internal/core/domain"
)

type Applications interface {
	// Get returns a stored application by ID.
	Get(ctx context.Context, id int64) (*domain.Application, error)
	// Review records a moderator decision and returns the updated application.
	Review(ctx context.Context, id int64, status domain.ApplicationStatus, moderatorID string) (*domain.Application, error)
	// ListPending returns applications still awaiting review, oldest first.
	ListPending(ctx context.Context) ([]domain.Application, error)
}

type Authorizer interface {
	// IsModerator reports whether the user may review applications.
	IsModerator(userID string) bool
}
