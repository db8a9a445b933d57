package provider

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

const defaultBedrockModel = "us.amazon.nova-lite-v1:0"

type bedrockBackend struct {
	client *bedrockruntime.Client
	model  string
	ready  bool
}

func newBedrockBackend(cfg Config) *bedrockBackend {
	b := &bedrockBackend{model: cfg.BedrockModel}
	if b.model == "" {
		b.model = defaultBedrockModel
	}
	if cfg.BedrockRegion == "" {
		return b
	}
	awsCfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(cfg.BedrockRegion))
	if err != nil {
		return b
	}
	if creds, err := awsCfg.Credentials.Retrieve(context.Background()); err != nil || !creds.HasKeys() {
		return b
	}
	b.client = bedrockruntime.NewFromConfig(awsCfg)
	b.ready = true
	return b
}

func (b *bedrockBackend) Ready() bool          { return b.ready }
func (b *bedrockBackend) CurrentModel() string { return b.model }

func (b *bedrockBackend) Models() []Model {
	return []Model{
		{ID: "us.amazon.nova-lite-v1:0", Name: "Nova Lite", Backend: BackendBedrock, Cost: "Low cost, fast"},
		{ID: "us.amazon.nova-pro-v1:0", Name: "Nova Pro", Backend: BackendBedrock, Cost: "Higher cost, best quality"},
	}
}

func (b *bedrockBackend) SetModel(id string) bool {
	for _, m := range b.Models() {
		if m.ID == id {
			b.model = id
			return true
		}
	}
	return false
}

func (b *bedrockBackend) ConfigurationHelp() string {
	return fmt.Sprintf(`To enable Bedrock responses:
1. Configure AWS credentials (aws configure, or environment variables)
2. Export the region: AWS_REGION=us-east-1
3. Optionally set the model: HOSTBOX_BEDROCK_MODEL=%s`, b.model)
}

func (b *bedrockBackend) Complete(ctx context.Context, userPrompt, systemPrompt string, maxTokens int) (string, error) {
	resp, err := b.client.Converse(ctx, &bedrockruntime.ConverseInput{
		ModelId: aws.String(b.model),
		System: []types.SystemContentBlock{
			&types.SystemContentBlockMemberText{Value: systemPrompt},
		},
		Messages: []types.Message{
			{
				Role: types.ConversationRoleUser,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberText{Value: userPrompt},
				},
			},
		},
		InferenceConfig: &types.InferenceConfiguration{
			MaxTokens:   aws.Int32(int32(maxTokens)),
			Temperature: aws.Float32(defaultTemperature),
		},
	})
	if err != nil {
		return "", fmt.Errorf("bedrock converse: %w", err)
	}

	msg, ok := resp.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return "", nil
	}
	for _, block := range msg.Value.Content {
		if tb, ok := block.(*types.ContentBlockMemberText); ok {
			return tb.Value, nil
		}
	}
	return "", nil
}
