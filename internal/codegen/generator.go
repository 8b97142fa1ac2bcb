package codegen

import (
	"context"
	"errors"

	"revtrain/internal/llm"
)

// ErrNoCode indicates the model returned no fenced code block at all.
var ErrNoCode = errors.New("codegen: completion contains no code block")

// Config bounds the generation calls.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns generation settings sized for long Java snippets.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// Generator produces Java training snippets seeded with requested defects.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	if cfg.MaxTokens <= 0 {
		cfg = DefaultConfig()
	}
	return &Generator{provider: provider, cfg: cfg}
}

// Generate asks the model for a fresh snippet containing input.Errors.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) (*CodeVersions, error) {
	ctx = llm.WithPurpose(ctx, "code-gen")
	return g.complete(ctx, GenerationPrompt(input))
}

// Regenerate asks the model to repair a snippet using a prompt built by
// RegenerationPrompt.
func (g *Generator) Regenerate(ctx context.Context, feedbackPrompt string) (*CodeVersions, error) {
	ctx = llm.WithPurpose(ctx, "code-regen")
	return g.complete(ctx, feedbackPrompt)
}

func (g *Generator) complete(ctx context.Context, prompt string) (*CodeVersions, error) {
	resp, err := g.provider.Generate(ctx, llm.Request{
		System: generationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}
	return ExtractVersions(resp.Text())
}
