package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/LuckyNugget/YourFoodie/pkg/config"
)

// Role identifies the author of a conversation turn
type Role string

// conversation turn roles
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single conversation exchange passed to the model verbatim
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Generator produces conversational text via an OpenAI-compatible API
type Generator struct {
	client *openai.Client
	config config.LLMConfig
}

// NewGenerator creates a new LLM generator
func NewGenerator(cfg config.LLMConfig) *Generator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &Generator{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// Generate sends a system instruction plus conversation turns to the model
// and returns the generated text. All failure categories (auth, rate limit,
// network) surface as errors; the caller decides how to recover. There is no
// retry here - the dialogue engine falls back to static wording instead.
func (g *Generator) Generate(ctx context.Context, system string, turns []Turn) (string, error) {
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	if g.config.SystemPrompt != "" {
		system += "\n\n" + g.config.SystemPrompt
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(turns)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, turn := range turns {
		role := openai.ChatMessageRoleUser
		if turn.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}

	req := openai.ChatCompletionRequest{
		Model:       g.config.Model,
		Temperature: float32(g.config.Temperature),
		MaxTokens:   g.config.MaxTokens,
		Messages:    messages,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}

	return resp.Choices[0].Message.Content, nil
}
