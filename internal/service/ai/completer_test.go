package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvhelper/backend/internal/config"
	"github.com/dvhelper/backend/internal/model/chat"
	"github.com/dvhelper/backend/internal/service/openrouter"
)

func TestNewCompleterOpenRouter(t *testing.T) {
	completer, err := NewCompleter(context.Background(), config.AIConfig{
		Provider:   config.ProviderOpenRouter,
		OpenRouter: config.OpenRouterConfig{APIKey: "k", Model: "m", BaseURL: "http://x.test"},
	})
	require.NoError(t, err)
	assert.IsType(t, &openrouter.Client{}, completer)
}

func TestNewCompleterMissingCredentials(t *testing.T) {
	_, err := NewCompleter(context.Background(), config.AIConfig{Provider: config.ProviderOpenRouter})
	assert.ErrorIs(t, err, ErrCompleterUnavailable)

	_, err = NewCompleter(context.Background(), config.AIConfig{Provider: config.ProviderArk})
	assert.ErrorIs(t, err, ErrCompleterUnavailable)
}

func TestUnavailableAlwaysFails(t *testing.T) {
	reply, err := Unavailable{}.Complete(context.Background(), chat.CompletionRequest{})
	assert.Empty(t, reply)
	assert.ErrorIs(t, err, ErrCompleterUnavailable)
}
