package chat

import (
	"sync"

	"github.com/dvhelper/backend/internal/model/chat"
)

// Transcript is an append-only, ordered message log. Entries are never
// mutated or removed once appended.
type Transcript struct {
	mu       sync.RWMutex
	messages []chat.Message
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{messages: make([]chat.Message, 0, 16)}
}

// Append adds message at the end.
func (t *Transcript) Append(message chat.Message) {
	t.mu.Lock()
	t.messages = append(t.messages, message)
	t.mu.Unlock()
}

// Len returns the number of stored messages.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}

// Messages returns a copy in insertion order.
func (t *Transcript) Messages() []chat.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()

	copied := make([]chat.Message, len(t.messages))
	copy(copied, t.messages)
	return copied
}

// History projects the transcript to the role/content pairs sent upstream.
func (t *Transcript) History() []chat.HistoryMessage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	history := make([]chat.HistoryMessage, len(t.messages))
	for i, m := range t.messages {
		history[i] = chat.HistoryMessage{Role: m.Role, Content: m.Content}
	}
	return history
}
