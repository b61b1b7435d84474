package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "CORS_ALLOWED_ORIGINS", "LLM_PROVIDER", "LLM_TEMPERATURE", "LLM_MAX_TOKENS",
		"OPENROUTER_API_KEY", "OPENROUTER_BASE_URL", "OPENROUTER_MODEL", "OPENROUTER_SITE_URL",
		"OPENROUTER_SITE_NAME", "OPENROUTER_TIMEOUT", "ARK_API_KEY", "ARK_ACCESS_KEY",
		"ARK_SECRET_KEY", "ARK_MODEL", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, ProviderOpenRouter, cfg.AI.Provider)
	assert.Equal(t, 0.8, cfg.AI.Temperature)
	assert.Equal(t, 1000, cfg.AI.MaxTokens)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.AI.OpenRouter.BaseURL)
	assert.Equal(t, "deepseek/deepseek-r1-0528:free", cfg.AI.OpenRouter.Model)
	assert.Equal(t, 120*time.Second, cfg.AI.OpenRouter.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.AI.Enabled(), "no credential means disabled")
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "127.0.0.1:9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("LLM_MAX_TOKENS", "256")
	t.Setenv("OPENROUTER_API_KEY", "secret")
	t.Setenv("OPENROUTER_BASE_URL", "http://upstream.test/v1/")
	t.Setenv("OPENROUTER_TIMEOUT", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 0.2, cfg.AI.Temperature)
	assert.Equal(t, 256, cfg.AI.MaxTokens)
	assert.Equal(t, "http://upstream.test/v1", cfg.AI.OpenRouter.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.AI.OpenRouter.Timeout)
	assert.True(t, cfg.AI.Enabled())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":            "80 80",
		"LLM_PROVIDER":    "carrier-pigeon",
		"LLM_TEMPERATURE": "warm",
		"LLM_MAX_TOKENS":  "0",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestArkEnabled(t *testing.T) {
	cfg := AIConfig{Provider: ProviderArk, Ark: ArkConfig{Model: "ep-1", AccessKey: "ak"}}
	assert.False(t, cfg.Enabled())

	cfg.Ark.SecretKey = "sk"
	assert.True(t, cfg.Enabled())
}
