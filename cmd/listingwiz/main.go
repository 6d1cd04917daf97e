package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-wizard/internal/config"
	"github.com/goliatone/go-wizard/pkg/draft"
	"github.com/goliatone/go-wizard/pkg/httpcap"
	"github.com/goliatone/go-wizard/pkg/model"
	"github.com/goliatone/go-wizard/pkg/render"
	"github.com/goliatone/go-wizard/pkg/renderers/prompt"
)

var (
	flagConfig   string
	flagType     string
	flagActor    string
	flagBaseURL  string
	flagRenderer string
	flagDryRun   bool
	flagDiscard  bool
)

func main() {
	root := &cobra.Command{
		Use:           "listingwiz",
		Short:         "Run a listing creation wizard from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file path")

	root.AddCommand(newRunCmd(), newTypesCmd())

	if err := root.Execute(); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start or resume a listing wizard session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			if flagBaseURL != "" {
				cfg.APIBaseURL = flagBaseURL
			}
			if flagActor != "" {
				cfg.ActorID = flagActor
			}

			listingType := model.ListingType(flagType)
			if !listingType.Known() {
				return fmt.Errorf("unknown listing type %q, see 'listingwiz types'", flagType)
			}

			logger, err := buildLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			renderer, err := buildRenderers().Get(flagRenderer)
			if err != nil {
				return err
			}

			session := &session{
				cfg:         cfg,
				listingType: listingType,
				logger:      logger,
				storage:     buildStorage(cfg),
				doer:        buildDoer(cfg, flagDryRun),
				renderer:    renderer,
				discard:     flagDiscard,
			}
			return session.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&flagType, "type", "t", "", "listing type (rent_a_car, hotel, hospital, transfer)")
	cmd.Flags().StringVarP(&flagActor, "actor", "a", "", "acting partner id, scopes drafts and payloads")
	cmd.Flags().StringVar(&flagBaseURL, "base-url", "", "override the extranet API base URL")
	cmd.Flags().StringVar(&flagRenderer, "renderer", prompt.Name, "renderer to collect values with")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "do not call the API, fake submissions locally")
	cmd.Flags().BoolVar(&flagDiscard, "discard", false, "discard any saved draft before starting")
	cmd.MarkFlagRequired("type")
	return cmd
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported listing types",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range model.ListingTypes() {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func buildStorage(cfg *config.Config) draft.Storage {
	if !cfg.UseRedis() {
		return draft.NewMemory()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return draft.NewRedis(client, draft.WithTTL(draftTTL(cfg)))
}

// buildRenderers registers every renderer this binary ships. Sessions pick
// one by name through --renderer; an unknown name fails before any prompt
// is shown.
func buildRenderers() *render.Registry {
	renderers := render.NewRegistry()
	renderers.MustRegister(prompt.New())
	return renderers
}

func buildDoer(cfg *config.Config, dryRun bool) httpcap.Doer {
	if dryRun {
		return &fakeDoer{}
	}
	opts := []httpcap.Option{}
	if cfg.APIToken != "" {
		opts = append(opts, httpcap.WithHeader("Authorization", "Bearer "+cfg.APIToken))
	}
	return httpcap.NewClient(cfg.APIBaseURL, opts...)
}
