package chat

import (
	"time"

	"github.com/dvhelper/backend/internal/model/profile"
)

// State is the orchestrator state exposed to renderers.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateFailed     State = "idle_with_error"
)

// Snapshot is a point-in-time copy of one conversation, safe to hand to renderers.
type Snapshot struct {
	ID          string          `json:"id"`
	State       State           `json:"state"`
	Pending     bool            `json:"pending"`
	Error       string          `json:"error,omitempty"`
	Profile     profile.Profile `json:"profile"`
	Placeholder string          `json:"placeholder,omitempty"`
	Messages    []Message       `json:"messages"`
	CreatedAt   time.Time       `json:"createdAt"`
}
