package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-sonnet-4-20250514"

type anthropicBackend struct {
	client anthropic.Client
	model  string
	ready  bool
}

func newAnthropicBackend(cfg Config) *anthropicBackend {
	b := &anthropicBackend{model: cfg.AnthropicModel}
	if b.model == "" {
		b.model = defaultAnthropicModel
	}
	if strings.HasPrefix(cfg.AnthropicKey, "sk-ant-api") {
		b.client = anthropic.NewClient(option.WithAPIKey(cfg.AnthropicKey))
		b.ready = true
	}
	return b
}

func (b *anthropicBackend) Ready() bool          { return b.ready }
func (b *anthropicBackend) CurrentModel() string { return b.model }

func (b *anthropicBackend) Models() []Model {
	return []Model{
		{ID: "claude-sonnet-4-20250514", Name: "Claude Sonnet 4", Backend: BackendAnthropic, Cost: "High quality, balanced cost", MaxTokens: 8192},
		{ID: "claude-opus-4-20250514", Name: "Claude Opus 4", Backend: BackendAnthropic, Cost: "Most powerful", MaxTokens: 8192},
		{ID: "claude-3-5-sonnet-20241022", Name: "Claude 3.5 Sonnet", Backend: BackendAnthropic, Cost: "Previous generation, balanced", MaxTokens: 8192},
		{ID: "claude-3-5-haiku-20241022", Name: "Claude 3.5 Haiku", Backend: BackendAnthropic, Cost: "Fast and cost-effective", MaxTokens: 8192},
	}
}

func (b *anthropicBackend) SetModel(id string) bool {
	for _, m := range b.Models() {
		if m.ID == id {
			b.model = id
			return true
		}
	}
	return false
}

func (b *anthropicBackend) ConfigurationHelp() string {
	return fmt.Sprintf(`To enable Claude responses:
1. Get an Anthropic API key from https://console.anthropic.com/
2. Export it: ANTHROPIC_API_KEY=your-key-here
3. Optionally set the model: ANTHROPIC_MODEL=%s`, b.model)
}

func (b *anthropicBackend) Complete(ctx context.Context, userPrompt, systemPrompt string, maxTokens int) (string, error) {
	message, err := b.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(b.model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(defaultTemperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}

	var parts []string
	for _, block := range message.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			parts = append(parts, tb.Text)
		}
	}
	return strings.Join(parts, ""), nil
}
