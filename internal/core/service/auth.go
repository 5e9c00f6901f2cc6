package service

import (
	"github.com/rs/zerolog/log"
)

type ModeratorAuthorizer struct {
	allowlist map[string]struct{}
}

func NewAuthorizer(moderators []string) *ModeratorAuthorizer {
	allowlist := make(map[string]struct{}, len(moderators))
	for _, id := range moderators {
		allowlist[id] = struct{}{}
	}

	if len(allowlist) == 0 {
		log.Warn().Msg("no moderators configured, review commands will be rejected")
	}

	return &ModeratorAuthorizer{allowlist: allowlist}
}

func (a *ModeratorAuthorizer) IsModerator(userID string) bool {
	_, ok := a.allowlist[userID]
	if !ok {
		log.Debug().Str("userId", userID).Msg("user is not a moderator")
	}

	return ok
}
