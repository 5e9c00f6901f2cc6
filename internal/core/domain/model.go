package domain

import "time"

type Source string

const (
	User    Source = "user"
	System  Source = "system"
	Bot     Source = "bot"
	Webhook Source = "webhook"
)

type Channel struct {
	ID   string
	Name string
}

type Author struct {
	ID   string
	Name string
}

type Attachment struct {
	URL      string
	Filename string
}

// Message is an immutable snapshot of an inbound chat message.
type Message struct {
	ID          string
	GuildID     string
	Channel     Channel
	Author      Author
	Content     string
	Attachments []Attachment
	Timestamp   time.Time
	Source      Source
	JumpURL     string
}

// CommandContext bundles the message that invoked a command with its channel.
type CommandContext struct {
	Message *Message
	Channel Channel
}

func NewCommandContext(message *Message) *CommandContext {
	return &CommandContext{Message: message, Channel: message.Channel}
}

type CommandInfo struct {
	Name        string
	Description string
}

type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// Embed is a platform neutral rich message.
type Embed struct {
	Color        int
	Fields       []EmbedField
	ThumbnailURL string
	Footer       string
	Timestamp    time.Time
}
