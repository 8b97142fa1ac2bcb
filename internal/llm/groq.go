package llm

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// groqModels maps friendly names to Groq model IDs.
var groqModels = map[string]string{
	"llama-70b": "llama-3.3-70b-versatile",
	"llama-8b":  "llama-3.1-8b-instant",
}

// NewGroqProvider creates a provider for the Groq API. Groq exposes an
// OpenAI-compatible endpoint, so this reuses the OpenAI client with
// json_object response mode (Groq has no json_schema support; the schema
// is still enforced by post-hoc validation).
func NewGroqProvider(cfg GroqConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = baseURL

	client := openai.NewClientWithConfig(config)
	model := resolveModel(cfg.Model, groqModels)

	return &OpenAIProvider{
		client:           client,
		model:            model,
		jsonSchemaFormat: false,
	}, nil
}
