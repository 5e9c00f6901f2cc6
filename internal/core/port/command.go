package port

import (
	"context"
	"memberbot/internal/core/domain"
)

type Command interface {
	// Respond executes the command with the arguments following the command name and replies to the
	// invoking channel.
	Respond(ctx context.Context, cc *domain.CommandContext, args string) error
	// GetCommand retrieves the name the command is invoked with, without prefix.
	GetCommand() string
	// GetDescription returns a one-line summary shown by the help command.
	GetDescription() string
}

type CommandRegistry interface {
	// Register adds a new command handler to the command registry.
	Register(handler Command)
	// Get retrieves a registered Command based on its string identifier or returns an error if not found.
	Get(command string) (Command, error)
	// ListCommands returns a list of all command identifiers currently registered in the command registry.
	ListCommands() []string
}

// ExecutedListener observes the outcome of every command execution. cmd is nil when no command matched.
type ExecutedListener func(ctx context.Context, cmd *domain.CommandInfo, cc *domain.CommandContext,
	result domain.Result) error

type CommandExecutor interface {
	// Execute runs the command found in the message content after argPos.
	Execute(ctx context.Context, cc *domain.CommandContext, argPos int) domain.Result
}

type ApplicationSubmitter interface {
	// Submit records an application message and posts its summary embed.
	Submit(ctx context.Context, message *domain.Message) error
}
