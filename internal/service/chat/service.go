package chat

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dvhelper/backend/internal/service/ai"
)

var ErrSessionNotFound = errors.New("session not found")

// Service keeps the conversations of the running process. Nothing outlives it.
type Service struct {
	completer ai.Completer
	opts      []Option

	mu       sync.RWMutex
	sessions map[string]*Conversation
}

// NewService builds an in-memory registry whose conversations share completer.
func NewService(completer ai.Completer, opts ...Option) *Service {
	if completer == nil {
		completer = ai.Unavailable{}
	}
	return &Service{
		completer: completer,
		opts:      opts,
		sessions:  make(map[string]*Conversation),
	}
}

// CreateSession starts a fresh conversation.
func (s *Service) CreateSession(_ context.Context) (*Conversation, error) {
	conv := NewConversation(uuid.NewString(), s.completer, s.opts...)

	s.mu.Lock()
	s.sessions[conv.ID()] = conv
	s.mu.Unlock()

	log.Info().Str("session_id", conv.ID()).Msg("session created")
	return conv, nil
}

// GetSession retrieves a conversation by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (*Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return conv, nil
}
