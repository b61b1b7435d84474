package chat

import "time"

// Role identifies who authored a transcript entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	// RoleSystem only appears on the wire, never in a transcript.
	RoleSystem Role = "system"
)

// Message is a single immutable transcript entry.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"timestamp"`
}

// HistoryMessage is the externally visible projection of a Message: ids and
// timestamps never leave the process.
type HistoryMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is the provider-neutral payload for one completion call.
type CompletionRequest struct {
	System  string
	History []HistoryMessage
}
