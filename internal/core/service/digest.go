package service

import (
	"context"
	"fmt"
	"memberbot/internal/core/port"
	"strings"

	"github.com/rs/zerolog/log"
)

// PendingDigest posts a periodic reminder listing applications that still await review.
type PendingDigest struct {
	applications port.Applications
	sender       port.ChannelSender
	channelID    string
}

func NewPendingDigest(applications port.Applications, sender port.ChannelSender, channelID string) *PendingDigest {
	return &PendingDigest{applications: applications, sender: sender, channelID: channelID}
}

const digestHeader = "Applications awaiting review (%d):\n"

func (d *PendingDigest) Run(ctx context.Context) error {
	pending, err := d.applications.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending applications: %w", err)
	}

	if len(pending) == 0 {
		log.Debug().Msg("no pending applications, skipping digest")
		return nil
	}

	sb := &strings.Builder{}
	_, _ = fmt.Fprintf(sb, digestHeader, len(pending))

	for _, app := range pending {
		_, _ = fmt.Fprintf(sb, " - #%d by %s, submitted %s: %s\n",
			app.ID, app.AuthorName, app.SubmittedAt.Format("2006-01-02"), app.JumpURL)
	}

	err = d.sender.SendText(ctx, d.channelID, sb.String())
	if err != nil {
		return fmt.Errorf("failed to send digest: %w", err)
	}

	log.Info().Int("pending", len(pending)).Str("channelId", d.channelID).Msg("sent pending applications digest")

	return nil
}
