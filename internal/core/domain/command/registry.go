package command

import (
	"errors"
	"memberbot/internal/core/port"
	"sort"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
)

type Registry struct {
	commands map[string]port.Command
}

func (r *Registry) Register(handler port.Command) {
	if r.commands == nil {
		r.commands = make(map[string]port.Command)
	}

	name := strings.ToLower(handler.GetCommand())

	log.Info().Str("handler", name).Msg("adding command handler to registry")
	r.commands[name] = handler
}

func (r *Registry) Get(command string) (port.Command, error) {
	log.Debug().Str("command", command).Msg("fetching command handler from registry")

	if r.commands == nil {
		err := errors.New("can't fetch command, registry not initialized")
		return nil, err
	}

	handler, ok := r.commands[command]
	if !ok {
		return nil, errors.New("command not found")
	}

	return handler, nil
}

// ListCommands returns the registered command names in alphabetical order.
func (r *Registry) ListCommands() []string {
	keys := make([]string, 0, len(r.commands))

	for k := range r.commands {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// ParseCommandArgs returns everything after the command name, trimmed. Any whitespace, including
// newlines, ends the name.
func ParseCommandArgs(args string) string {
	_, rest := splitCommand(args)
	return rest
}

func ParseCommand(args string) string {
	name, _ := splitCommand(args)
	return strings.ToLower(name)
}

func splitCommand(text string) (string, string) {
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return text, ""
	}

	return text[:i], strings.TrimSpace(text[i:])
}
