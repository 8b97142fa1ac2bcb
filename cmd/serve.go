package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"revtrain/internal/badges"
	"revtrain/internal/codeeval"
	"revtrain/internal/codegen"
	"revtrain/internal/errorcatalog"
	"revtrain/internal/llm"
	"revtrain/internal/review"
	"revtrain/internal/server"
	"revtrain/internal/workflow"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("listen", "", "Listen address (default :8080, or REVTRAIN_LISTEN)")
	serveCmd.Flags().String("origins", "", "Comma-separated CORS origins (or REVTRAIN_ORIGINS)")
}

func runServe(cmd *cobra.Command) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return fmt.Errorf("no LLM provider configured: %w", err)
		}
		cfg = discovered
	}

	s, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	catalog, err := errorcatalog.Load()
	if err != nil {
		return fmt.Errorf("load error catalog: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := llm.NewProviders(ctx, cfg, s.EventRepo())
	if err != nil {
		return fmt.Errorf("create LLM providers: %w", err)
	}

	engine := workflow.NewEngine(
		codegen.NewGenerator(providers.Generative, codegen.Config{
			MaxTokens:   4096,
			Temperature: cfg.TemperatureForRole(llm.RoleGenerative),
		}),
		codeeval.NewEvaluator(providers.Review, codeeval.Config{
			MaxTokens:   2048,
			Temperature: cfg.TemperatureForRole(llm.RoleReview),
		}),
		review.NewGrader(providers.Review, review.Config{
			MaxTokens:   2048,
			Temperature: cfg.TemperatureForRole(llm.RoleReview),
		}).WithSummaryProvider(providers.Summary),
		catalog,
		log,
	)

	badgeSvc := badges.NewService(s.EventRepo(), log)
	manager := workflow.NewManager(engine, s.EventRepo(), badgeSvc, log)

	listen, _ := cmd.Flags().GetString("listen")
	if listen == "" {
		listen = os.Getenv("REVTRAIN_LISTEN")
	}
	origins, _ := cmd.Flags().GetString("origins")
	if origins == "" {
		origins = os.Getenv("REVTRAIN_ORIGINS")
	}
	var allowed []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed = append(allowed, o)
		}
	}

	srv := server.New(server.Config{
		Listen:         listen,
		SecretKey:      []byte(os.Getenv("REVTRAIN_SECRET_KEY")),
		AllowedOrigins: allowed,
		SessionTTL:     2 * time.Hour,
	}, manager, badgeSvc, catalog, log)

	log.Info("starting server",
		"provider", cfg.Provider,
		"generative_model", providers.Generative.ModelID(),
		"review_model", providers.Review.ModelID())
	return srv.Run(ctx)
}
