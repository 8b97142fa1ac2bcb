package llm

import (
	"context"
	"fmt"

	"revtrain/internal/store"
)

// Providers bundles one provider per workflow role. The roles may share a
// single model or each use their own, depending on configuration.
type Providers struct {
	Generative Provider
	Review     Provider
	Summary    Provider
}

// NewProviders creates the per-role providers from configuration, each
// wrapped with retry and event-logging middleware.
func NewProviders(ctx context.Context, cfg Config, eventRepo store.EventRepo) (*Providers, error) {
	gen, err := newProviderForRole(ctx, cfg, RoleGenerative)
	if err != nil {
		return nil, err
	}
	rev, err := newProviderForRole(ctx, cfg, RoleReview)
	if err != nil {
		return nil, err
	}
	sum, err := newProviderForRole(ctx, cfg, RoleSummary)
	if err != nil {
		return nil, err
	}

	return &Providers{
		Generative: wrap(gen, cfg, eventRepo),
		Review:     wrap(rev, cfg, eventRepo),
		Summary:    wrap(sum, cfg, eventRepo),
	}, nil
}

// NewProvider creates a single provider for the configured backend,
// wrapped with retry and logging middleware. Used by commands that only
// need one model regardless of role.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	base, err := newBase(ctx, cfg, "")
	if err != nil {
		return nil, err
	}
	if cfg.Provider == "mock" {
		return base, nil
	}
	return wrap(base, cfg, eventRepo), nil
}

func newProviderForRole(ctx context.Context, cfg Config, role ModelRole) (Provider, error) {
	return newBase(ctx, cfg, cfg.ModelForRole(role))
}

// newBase constructs the raw backend provider. modelOverride, when
// non-empty, replaces the provider's configured model.
func newBase(ctx context.Context, cfg Config, modelOverride string) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		c := cfg.Anthropic
		if modelOverride != "" {
			c.Model = modelOverride
		}
		base, err = NewAnthropicProvider(c)
	case "openai":
		c := cfg.OpenAI
		if modelOverride != "" {
			c.Model = modelOverride
		}
		base, err = NewOpenAIProvider(c)
	case "gemini":
		c := cfg.Gemini
		if modelOverride != "" {
			c.Model = modelOverride
		}
		base, err = NewGeminiProvider(ctx, c)
	case "groq":
		c := cfg.Groq
		if modelOverride != "" {
			c.Model = modelOverride
		}
		base, err = NewGroqProvider(c)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return base, nil
}

// wrap applies the middleware chain: caller → retry → logging → base.
func wrap(base Provider, cfg Config, eventRepo store.EventRepo) Provider {
	logged := WithLogging(base, eventRepo)
	return WithRetry(logged, cfg.Retry)
}
