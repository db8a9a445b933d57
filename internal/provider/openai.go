package provider

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = "gpt-4o-mini"

type openAIBackend struct {
	client *openai.Client
	model  string
	ready  bool
}

func newOpenAIBackend(cfg Config) *openAIBackend {
	b := &openAIBackend{model: cfg.OpenAIModel}
	if b.model == "" {
		b.model = defaultOpenAIModel
	}
	if cfg.OpenAIKey != "" && cfg.OpenAIKey != "your-openai-api-key-here" {
		b.client = openai.NewClient(cfg.OpenAIKey)
		b.ready = true
	}
	return b
}

func (b *openAIBackend) Ready() bool          { return b.ready }
func (b *openAIBackend) CurrentModel() string { return b.model }

func (b *openAIBackend) Models() []Model {
	return []Model{
		{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo", Backend: BackendOpenAI, Cost: "Low cost, fast"},
		{ID: "gpt-4o-mini", Name: "GPT-4o Mini", Backend: BackendOpenAI, Cost: "Low cost, smarter"},
		{ID: "gpt-4o", Name: "GPT-4o", Backend: BackendOpenAI, Cost: "Higher cost, best quality"},
		{ID: "gpt-4-turbo", Name: "GPT-4 Turbo", Backend: BackendOpenAI, Cost: "High cost, very smart"},
		{ID: "gpt-5-mini", Name: "GPT-5 Mini", Backend: BackendOpenAI, Cost: "Newest tier, fixed sampling"},
		{ID: "gpt-5", Name: "GPT-5", Backend: BackendOpenAI, Cost: "Newest tier, most capable"},
	}
}

func (b *openAIBackend) SetModel(id string) bool {
	for _, m := range b.Models() {
		if m.ID == id {
			b.model = id
			return true
		}
	}
	return false
}

func (b *openAIBackend) ConfigurationHelp() string {
	return fmt.Sprintf(`To enable OpenAI responses:
1. Get an OpenAI API key from https://platform.openai.com/api-keys
2. Export it: OPENAI_API_KEY=your-key-here
3. Optionally set the model: OPENAI_MODEL=%s`, b.model)
}

// newestTierModel reports whether the model belongs to the API tier that
// renamed the output-length parameter to max_completion_tokens and rejects
// non-default sampling temperatures.
func newestTierModel(model string) bool {
	return strings.HasPrefix(model, "gpt-5") ||
		strings.HasPrefix(model, "o1") ||
		strings.HasPrefix(model, "o3") ||
		strings.HasPrefix(model, "o4")
}

func (b *openAIBackend) Complete(ctx context.Context, userPrompt, systemPrompt string, maxTokens int) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	}
	if newestTierModel(b.model) {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
		req.Temperature = defaultTemperature
	}

	resp, err := b.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
