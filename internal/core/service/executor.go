package service

import (
	"context"
	"memberbot/internal/core/domain"
	"memberbot/internal/core/domain/command"
	"memberbot/internal/core/port"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Executor resolves commands from message text and runs them, notifying listeners of every outcome.
type Executor struct {
	registry  port.CommandRegistry
	timeout   time.Duration
	mu        sync.RWMutex
	listeners []port.ExecutedListener
}

func NewExecutor(registry port.CommandRegistry, timeout time.Duration) *Executor {
	return &Executor{registry: registry, timeout: timeout}
}

func (e *Executor) OnExecuted(listener port.ExecutedListener) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.listeners = append(e.listeners, listener)
}

var unknownCommand = domain.Result{Error: domain.UnknownCommand, Reason: "Unknown command."}

// listenerTimeout bounds each notification round. Listeners run on a context detached from the
// message deadline so a timed out command can still be reported.
const listenerTimeout = 10 * time.Second

func (e *Executor) Execute(ctx context.Context, cc *domain.CommandContext, argPos int) domain.Result {
	text := ""
	if argPos < len(cc.Message.Content) {
		text = cc.Message.Content[argPos:]
	}

	name := command.ParseCommand(text)

	l := zerolog.Ctx(ctx).With().Str("command", name).Logger()
	ctx = l.WithContext(ctx)

	cmd, err := e.registry.Get(name)
	if err != nil {
		l.Debug().Err(err).Msg("no handler for command")
		e.notify(ctx, nil, cc, unknownCommand)
		return unknownCommand
	}

	info := &domain.CommandInfo{Name: cmd.GetCommand(), Description: cmd.GetDescription()}

	l.Info().Msg("handling command")

	cmdCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	err = cmd.Respond(cmdCtx, cc, command.ParseCommandArgs(text))
	if err != nil {
		l.Warn().Err(err).Msg("command failed")
	}

	result := domain.ResultFromError(err)
	e.notify(ctx, info, cc, result)

	return result
}

func (e *Executor) notify(ctx context.Context, info *domain.CommandInfo, cc *domain.CommandContext,
	result domain.Result) {
	e.mu.RLock()
	listeners := make([]port.ExecutedListener, len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), listenerTimeout)
	defer cancel()

	for _, listener := range listeners {
		if err := listener(ctx, info, cc, result); err != nil {
			zerolog.Ctx(ctx).Err(err).Msg("command executed listener failed")
		}
	}
}
