package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	analysis "github.com/dvhelper/backend/internal/analysis/profile"
	"github.com/dvhelper/backend/internal/model/chat"
	"github.com/dvhelper/backend/internal/model/profile"
	"github.com/dvhelper/backend/internal/model/resource"
	"github.com/dvhelper/backend/internal/service/ai"
)

// FallbackNotice is the only failure text a user ever sees.
const FallbackNotice = "I apologize, but I encountered an error. Please try again or contact the helplines directly if this is urgent. Remember, you can always call 1091 for immediate support."

// Option customises a Conversation.
type Option func(*Conversation)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Conversation) { c.now = now }
}

// WithIDGenerator overrides how message ids are minted.
func WithIDGenerator(newID func() string) Option {
	return func(c *Conversation) { c.newID = newID }
}

// Conversation owns one transcript and one profile and serialises
// submissions: at most one completion request is in flight at a time.
type Conversation struct {
	id        string
	createdAt time.Time
	completer ai.Completer
	now       func() time.Time
	newID     func() string

	mu          sync.Mutex
	transcript  *Transcript
	profile     profile.Profile
	pending     bool
	lastError   string
	turnDone    chan struct{}
	subscribers map[int]chan chat.Snapshot
	nextSub     int
}

// NewConversation starts an idle conversation with an empty transcript and profile.
func NewConversation(id string, completer ai.Completer, opts ...Option) *Conversation {
	c := &Conversation{
		id:          id,
		completer:   completer,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       func() string { return uuid.Must(uuid.NewV7()).String() },
		transcript:  NewTranscript(),
		subscribers: make(map[int]chan chat.Snapshot),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.createdAt = c.now()
	return c
}

// ID returns the conversation identifier.
func (c *Conversation) ID() string {
	return c.id
}

// Submit records a user utterance and dispatches a completion request in the
// background. It reports false, changing nothing, when text is blank or a
// request is already in flight. The request is detached from ctx cancellation.
func (c *Conversation) Submit(ctx context.Context, text string) bool {
	content := strings.TrimSpace(text)
	if content == "" {
		log.Debug().Str("session_id", c.id).Msg("ignoring empty submission")
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending {
		log.Debug().Str("session_id", c.id).Msg("ignoring submission while a request is in flight")
		return false
	}

	update := analysis.Extract(content, c.profile)
	c.profile = c.profile.Apply(update)

	c.transcript.Append(chat.Message{
		ID:        c.newID(),
		Role:      chat.RoleUser,
		Content:   content,
		CreatedAt: c.now(),
	})

	c.lastError = ""
	c.pending = true
	c.turnDone = make(chan struct{})

	req := chat.CompletionRequest{
		System:  ai.BuildSystemPrompt(c.profile),
		History: c.transcript.History(),
	}

	log.Info().
		Str("session_id", c.id).
		Int("messages", len(req.History)).
		Bool("profile_updated", !update.Empty()).
		Msg("dispatching completion request")

	c.publishLocked()
	go c.complete(context.WithoutCancel(ctx), req, c.turnDone)
	return true
}

func (c *Conversation) complete(ctx context.Context, req chat.CompletionRequest, done chan struct{}) {
	defer close(done)

	startTime := time.Now()
	reply, err := c.completer.Complete(ctx, req)
	if err == nil && strings.TrimSpace(reply) == "" {
		err = ai.ErrEmptyCompletion
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending = false
	if err != nil {
		c.lastError = FallbackNotice
		log.Warn().Err(err).Str("session_id", c.id).Dur("elapsed", time.Since(startTime)).Msg("completion failed")
		c.publishLocked()
		return
	}

	c.transcript.Append(chat.Message{
		ID:        c.newID(),
		Role:      chat.RoleAssistant,
		Content:   reply,
		CreatedAt: c.now(),
	})
	log.Info().
		Str("session_id", c.id).
		Int("response_len", len(reply)).
		Dur("elapsed", time.Since(startTime)).
		Msg("completion appended")
	c.publishLocked()
}

// Wait blocks until the most recently accepted submission has resolved.
func (c *Conversation) Wait() {
	c.mu.Lock()
	done := c.turnDone
	c.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Snapshot returns a copy of the current state.
func (c *Conversation) Snapshot() chat.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Profile returns the current profile.
func (c *Conversation) Profile() profile.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile
}

// Subscribe returns a feed of snapshots, primed with the current one. Slow
// readers only ever see the latest snapshot. Call cancel to stop delivery.
func (c *Conversation) Subscribe() (<-chan chat.Snapshot, func()) {
	ch := make(chan chat.Snapshot, 1)

	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subscribers[id] = ch
	ch <- c.snapshotLocked()
	c.mu.Unlock()

	return ch, func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

func (c *Conversation) stateLocked() chat.State {
	switch {
	case c.pending:
		return chat.StateSubmitting
	case c.lastError != "":
		return chat.StateFailed
	default:
		return chat.StateIdle
	}
}

func (c *Conversation) snapshotLocked() chat.Snapshot {
	return chat.Snapshot{
		ID:          c.id,
		State:       c.stateLocked(),
		Pending:     c.pending,
		Error:       c.lastError,
		Profile:     c.profile,
		Placeholder: resource.Placeholder(c.profile.Name),
		Messages:    c.transcript.Messages(),
		CreatedAt:   c.createdAt,
	}
}

func (c *Conversation) publishLocked() {
	if len(c.subscribers) == 0 {
		return
	}

	snapshot := c.snapshotLocked()
	for _, ch := range c.subscribers {
		select {
		case ch <- snapshot:
		default:
			// drop the stale snapshot so the newest one fits
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}
