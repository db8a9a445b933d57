package provider

import (
	"os"
	"time"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultTemperature = 0.8
)

// Config carries credentials and selection for all backends. It is plain
// data: construct it from the environment with ConfigFromEnv, or fill it
// directly in tests.
type Config struct {
	Preferred BackendID

	OpenAIKey   string
	OpenAIModel string

	AnthropicKey   string
	AnthropicModel string

	BedrockRegion string
	BedrockModel  string

	// Timeout bounds every backend call. Zero means defaultTimeout.
	Timeout time.Duration
}

func (c Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return defaultTimeout
}

// ConfigFromEnv reads backend configuration from the process environment.
func ConfigFromEnv() Config {
	cfg := Config{
		Preferred:      BackendID(os.Getenv("HOSTBOX_AI_PROVIDER")),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    os.Getenv("OPENAI_MODEL"),
		AnthropicKey:   os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel: os.Getenv("ANTHROPIC_MODEL"),
		BedrockRegion:  os.Getenv("AWS_REGION"),
		BedrockModel:   os.Getenv("HOSTBOX_BEDROCK_MODEL"),
	}
	if d, err := time.ParseDuration(os.Getenv("HOSTBOX_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	return cfg
}
