package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"memberbot/internal/core/domain"
	"time"

	"github.com/jmoiron/sqlx"
)

// SQLite is an application store backed by sqlx.
type SQLite struct {
	db *sqlx.DB
}

func NewSQLite(db *sqlx.DB) *SQLite {
	return &SQLite{db: db}
}

const insertApplication = `
INSERT INTO applications (author_id, author_name, channel_id, message_id, content, attachment_url, jump_url,
                          submitted_at, status)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (s *SQLite) Create(ctx context.Context, app *domain.Application) (int64, error) {
	status := app.Status
	if status == "" {
		status = domain.Pending
	}

	res, err := s.db.ExecContext(ctx, insertApplication,
		app.AuthorID, app.AuthorName, app.ChannelID, app.MessageID, app.Content, app.AttachmentURL, app.JumpURL,
		app.SubmittedAt.UTC(), string(status))
	if err != nil {
		return 0, fmt.Errorf("failed to insert application: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read application id: %w", err)
	}

	return id, nil
}

const selectApplications = `
SELECT id, author_id, author_name, channel_id, message_id, content, attachment_url, jump_url, submitted_at,
       status, reviewed_by, reviewed_at
FROM applications`

func (s *SQLite) Get(ctx context.Context, id int64) (*domain.Application, error) {
	var app domain.Application

	err := s.db.GetContext(ctx, &app, selectApplications+" WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("application %d: %w", id, domain.ErrApplicationNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application %d: %w", id, err)
	}

	normalize(&app)

	return &app, nil
}

func (s *SQLite) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus, reviewer string,
	reviewedAt time.Time) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var current domain.ApplicationStatus

	err = tx.GetContext(ctx, &current, "SELECT status FROM applications WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("application %d: %w", id, domain.ErrApplicationNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to read application %d: %w", id, err)
	}

	if current != domain.Pending {
		return fmt.Errorf("application %d is %s: %w", id, current, domain.ErrAlreadyReviewed)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE applications SET status = ?, reviewed_by = ?, reviewed_at = ? WHERE id = ?",
		string(status), reviewer, reviewedAt.UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update application %d: %w", id, err)
	}

	return tx.Commit()
}

func (s *SQLite) List(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	var (
		apps []domain.Application
		err  error
	)

	if status == "" {
		err = s.db.SelectContext(ctx, &apps, selectApplications+" ORDER BY id")
	} else {
		err = s.db.SelectContext(ctx, &apps, selectApplications+" WHERE status = ? ORDER BY id", string(status))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	for i := range apps {
		normalize(&apps[i])
	}

	return apps, nil
}

func normalize(app *domain.Application) {
	app.SubmittedAt = app.SubmittedAt.UTC()
	if app.ReviewedAt != nil {
		t := app.ReviewedAt.UTC()
		app.ReviewedAt = &t
	}
}
