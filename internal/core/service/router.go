package service

import (
	"context"
	"memberbot/internal/core/domain"
	"memberbot/internal/core/port"
	"strings"

	"github.com/rs/zerolog"
)

// MessageRouter decides whether an inbound message is an application submission, a command or noise.
type MessageRouter struct {
	prefix       string
	applications port.ApplicationSubmitter
	executor     port.CommandExecutor
}

func NewMessageRouter(prefix string, applications port.ApplicationSubmitter,
	executor port.CommandExecutor) *MessageRouter {
	return &MessageRouter{prefix: prefix, applications: applications, executor: executor}
}

func (r *MessageRouter) OnMessage(ctx context.Context, message *domain.Message) error {
	l := zerolog.Ctx(ctx)

	if message.Source != domain.User {
		l.Trace().Str("source", string(message.Source)).Msg("ignoring non-user message")
		return nil
	}

	// the application channel is checked first, its messages are never commands
	if message.Channel.Name == domain.ApplicationChannel {
		if len(message.Attachments) == 0 {
			l.Debug().Msg("ignoring application channel message without attachment")
			return nil
		}

		return r.applications.Submit(ctx, message)
	}

	if r.prefix == "" || !strings.HasPrefix(message.Content, r.prefix) {
		return nil
	}

	r.executor.Execute(ctx, domain.NewCommandContext(message), len(r.prefix))

	return nil
}
