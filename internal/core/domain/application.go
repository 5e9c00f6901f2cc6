package domain

import (
	"fmt"
	"strings"
	"time"
)

type ApplicationStatus string

const (
	Pending  ApplicationStatus = "pending"
	Accepted ApplicationStatus = "accepted"
	Rejected ApplicationStatus = "rejected"
)

const (
	ColorGreen = 0x2ECC71
	ColorRed   = 0xE74C3C
	ColorBlue  = 0x3498DB
)

// Color maps a status to the embed accent color. Unknown values render like Pending.
func (s ApplicationStatus) Color() int {
	switch s {
	case Accepted:
		return ColorGreen
	case Rejected:
		return ColorRed
	default:
		return ColorBlue
	}
}

func (s ApplicationStatus) Valid() bool {
	return s == Pending || s == Accepted || s == Rejected
}

type Application struct {
	ID            int64             `db:"id"`
	AuthorID      string            `db:"author_id"`
	AuthorName    string            `db:"author_name"`
	ChannelID     string            `db:"channel_id"`
	MessageID     string            `db:"message_id"`
	Content       string            `db:"content"`
	AttachmentURL string            `db:"attachment_url"`
	JumpURL       string            `db:"jump_url"`
	SubmittedAt   time.Time         `db:"submitted_at"`
	Status        ApplicationStatus `db:"status"`
	ReviewedBy    string            `db:"reviewed_by"`
	ReviewedAt    *time.Time        `db:"reviewed_at"`
}

// NewApplication builds a pending application from a message. Only the first attachment is used.
func NewApplication(message *Message) (*Application, error) {
	if len(message.Attachments) == 0 {
		return nil, ErrNoAttachment
	}

	return &Application{
		AuthorID:      message.Author.ID,
		AuthorName:    message.Author.Name,
		ChannelID:     message.Channel.ID,
		MessageID:     message.ID,
		Content:       message.Content,
		AttachmentURL: message.Attachments[0].URL,
		JumpURL:       message.JumpURL,
		SubmittedAt:   message.Timestamp,
		Status:        Pending,
	}, nil
}

const (
	footerTimeLayout = "2006-01-02 15:04:05 -07:00"
	noDetails        = "(no details provided)"
)

func (a *Application) Embed() *Embed {
	// discord rejects embed fields with an empty value
	details := a.Content
	if strings.TrimSpace(details) == "" {
		details = noDetails
	}

	return &Embed{
		Color: a.Status.Color(),
		Fields: []EmbedField{
			{
				Name:  fmt.Sprintf("Application by %s", a.AuthorName),
				Value: fmt.Sprintf("Author's Discord ID: %s\nApplication ID: %d", a.AuthorID, a.ID),
			},
			{Name: "Provided details", Value: details},
			{Name: "Link to original message", Value: a.JumpURL},
		},
		ThumbnailURL: a.AttachmentURL,
		Footer:       fmt.Sprintf("Applied at %s", a.SubmittedAt.Format(footerTimeLayout)),
		Timestamp:    a.SubmittedAt,
	}
}
