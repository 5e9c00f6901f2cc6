package port

import (
	"context"
	"memberbot/internal/core/domain"
	"time"
)

type ApplicationStore interface {
	// Create persists a new application and returns its assigned ID.
	Create(ctx context.Context, app *domain.Application) (int64, error)
	// Get returns the application with the given ID or domain.ErrApplicationNotFound.
	Get(ctx context.Context, id int64) (*domain.Application, error)
	// UpdateStatus records a review decision. Only pending applications can be reviewed.
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus, reviewer string,
		reviewedAt time.Time) error
	// List returns applications with the given status, or all of them when status is empty, oldest first.
	List(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error)
}
