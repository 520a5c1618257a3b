package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
database:
  dsn: "file:test.db?mode=rwc"
llm:
  endpoint: "https://api.openai.com/v1"
  api_key: "test-key"
  model: "gpt-4o-mini"
  temperature: 0.5
chat:
  history_limit: 10
  enforce_event_dates: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:test.db?mode=rwc", cfg.Database.DSN)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.InDelta(t, 0.5, cfg.LLM.Temperature, 0.001)
	assert.Equal(t, 10, cfg.Chat.HistoryLimit)
	assert.True(t, cfg.Chat.EnforceEventDates)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
llm:
  endpoint: "http://localhost:11434/v1"
  model: "llama3"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.001)
	assert.Equal(t, 500, cfg.LLM.MaxTokens)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 20, cfg.Chat.HistoryLimit)
	assert.Equal(t, 3, cfg.Chat.MaxCatalogItems)
	assert.False(t, cfg.Chat.EnforceEventDates)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_API_KEY", "secret-from-env")

	path := writeConfig(t, `
llm:
  endpoint: "https://api.openai.com/v1"
  api_key: "${TEST_API_KEY}"
  model: "gpt-4o-mini"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-from-env", cfg.LLM.APIKey)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "llm: [not a mapping")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "missing endpoint",
			content: "llm:\n  model: gpt-4o-mini\n",
			errMsg:  "llm.endpoint is required",
		},
		{
			name:    "missing model",
			content: "llm:\n  endpoint: http://localhost/v1\n",
			errMsg:  "llm.model is required",
		},
		{
			name:    "temperature out of range",
			content: "llm:\n  endpoint: http://localhost/v1\n  model: m\n  temperature: 3.5\n",
			errMsg:  "llm.temperature must be between 0 and 2",
		},
		{
			name:    "history limit too small",
			content: "llm:\n  endpoint: http://localhost/v1\n  model: m\nchat:\n  history_limit: 1\n",
			errMsg:  "chat.history_limit must be at least 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestGetters(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":7070"
llm:
  endpoint: "http://localhost/v1"
  model: "m"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":7070", listen)
	assert.Equal(t, 30*time.Second, timeout)

	llmCfg := cfg.GetLLMConfig()
	assert.Equal(t, "m", llmCfg.Model)

	chatCfg := cfg.GetChatConfig()
	assert.Equal(t, 20, chatCfg.HistoryLimit)
}
