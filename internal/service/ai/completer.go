package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/dvhelper/backend/internal/config"
	"github.com/dvhelper/backend/internal/model/chat"
	"github.com/dvhelper/backend/internal/service/openrouter"
)

var (
	ErrEmptyCompletion      = errors.New("completion carried no text")
	ErrCompleterUnavailable = errors.New("no completion provider configured")
)

// Completer turns a system instruction plus ordered history into reply text.
// Implementations must fail rather than return blank text.
type Completer interface {
	Complete(ctx context.Context, req chat.CompletionRequest) (string, error)
}

// Unavailable is used when no provider has credentials; every call fails.
type Unavailable struct{}

// Complete always returns ErrCompleterUnavailable.
func (Unavailable) Complete(context.Context, chat.CompletionRequest) (string, error) {
	return "", ErrCompleterUnavailable
}

// NewCompleter builds the completer for the configured provider.
func NewCompleter(ctx context.Context, cfg config.AIConfig) (Completer, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("%w: provider %q is missing credentials or model", ErrCompleterUnavailable, cfg.Provider)
	}

	switch cfg.Provider {
	case config.ProviderArk:
		chatModel, err := cfg.NewChatModel(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create chat model: %w", err)
		}
		return NewChainCompleter(ctx, chatModel)
	case config.ProviderOpenRouter:
		return openrouter.NewClient(openrouter.Config{
			APIKey:      cfg.OpenRouter.APIKey,
			BaseURL:     cfg.OpenRouter.BaseURL,
			Model:       cfg.OpenRouter.Model,
			SiteURL:     cfg.OpenRouter.SiteURL,
			SiteName:    cfg.OpenRouter.SiteName,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			Timeout:     cfg.OpenRouter.Timeout,
		}, nil), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.Provider)
	}
}
