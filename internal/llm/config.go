package llm

import (
	"fmt"
	"os"
	"time"
)

// ModelRole selects which model serves a given stage of the workflow.
// The generative role produces and repairs code snippets, the review role
// grades student reviews and evaluates generated code, and the summary
// role writes guidance and the final comparison report.
type ModelRole string

const (
	RoleGenerative ModelRole = "generative"
	RoleReview     ModelRole = "review"
	RoleSummary    ModelRole = "summary"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which backend to use.
	// Values: "anthropic", "openai", "gemini", "groq", "mock"
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Groq      GroqConfig
	Retry     RetryConfig

	// RoleModels optionally overrides the model per workflow role.
	// Unset roles fall back to the provider's configured model.
	RoleModels map[ModelRole]string

	// RoleTemperatures sets the sampling temperature per role. Code
	// generation wants some variety; grading wants determinism.
	RoleTemperatures map[ModelRole]float64

	// Timeout is the maximum duration for a single LLM request
	// (including retries). Default 60s; code generation responses
	// carry two full versions of a Java class.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for OpenAI-compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// GroqConfig holds Groq-specific configuration. Groq serves an
// OpenAI-compatible API, so the provider reuses the OpenAI client.
type GroqConfig struct {
	APIKey  string
	Model   string // Default: "llama-3.3-70b-versatile"
	BaseURL string // Default: "https://api.groq.com/openai/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "groq",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Groq: GroqConfig{
			Model:   "llama-3.3-70b-versatile",
			BaseURL: "https://api.groq.com/openai/v1",
		},
		RoleTemperatures: map[ModelRole]float64{
			RoleGenerative: 0.7,
			RoleReview:     0.2,
			RoleSummary:    0.4,
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("REVTRAIN_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("REVTRAIN_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("REVTRAIN_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("REVTRAIN_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("REVTRAIN_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("REVTRAIN_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("REVTRAIN_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("REVTRAIN_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if k := os.Getenv("REVTRAIN_GROQ_API_KEY"); k != "" {
		cfg.Groq.APIKey = k
	}
	if m := os.Getenv("REVTRAIN_GROQ_MODEL"); m != "" {
		cfg.Groq.Model = m
	}

	if cfg.RoleModels == nil {
		cfg.RoleModels = map[ModelRole]string{}
	}
	if m := os.Getenv("REVTRAIN_GENERATIVE_MODEL"); m != "" {
		cfg.RoleModels[RoleGenerative] = m
	}
	if m := os.Getenv("REVTRAIN_REVIEW_MODEL"); m != "" {
		cfg.RoleModels[RoleReview] = m
	}
	if m := os.Getenv("REVTRAIN_SUMMARY_MODEL"); m != "" {
		cfg.RoleModels[RoleSummary] = m
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Groq → Gemini → OpenAI → Anthropic) and returns a Config for the first
// provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GROQ_API_KEY"); k != "" {
		cfg.Provider = "groq"
		cfg.Groq.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// ModelForRole resolves the model for a role, falling back to the
// provider default when no override is configured.
func (c Config) ModelForRole(role ModelRole) string {
	if m, ok := c.RoleModels[role]; ok && m != "" {
		return m
	}
	return ""
}

// TemperatureForRole resolves the sampling temperature for a role.
func (c Config) TemperatureForRole(role ModelRole) float64 {
	if t, ok := c.RoleTemperatures[role]; ok {
		return t
	}
	return 0.0
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("REVTRAIN_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("REVTRAIN_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("REVTRAIN_GEMINI_API_KEY is required for the gemini provider")
		}
	case "groq":
		if c.Groq.APIKey == "" {
			return fmt.Errorf("REVTRAIN_GROQ_API_KEY is required for the groq provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
