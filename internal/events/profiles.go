package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/lutefd/skyblock-facade/internal/domain/profiles"
)

// ProfilesComputed is published after a player's profile set was built
// from fresh upstream data.
const ProfilesComputed = "ProfilesComputed"

type ProfilesComputedPayload struct {
	PlayerUUID uuid.UUID
	Profiles   profiles.Set
	ComputedAt time.Time
}
