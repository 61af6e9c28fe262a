package commands

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"addressbook/pkg/config"
	"addressbook/pkg/source"
)

var (
	sourceName string
	plain      bool
	timeout    time.Duration

	cfg    *config.Config
	logger *slog.Logger
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "contacts",
		Short:        "List and seed postal contacts",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
			slog.SetDefault(logger)

			var err error
			cfg, err = config.LoadConfig()
			if err != nil {
				return err
			}
			if sourceName != "" {
				cfg.ContactsSource = sourceName
			}
			_, err = cfg.Source()
			return err
		},
	}

	root.PersistentFlags().StringVar(&sourceName, "source", "", "contacts source: memory, postgres, dynamodb or bolt (default CONTACTS_SOURCE)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "how long to wait for the source")

	root.AddCommand(listCmd(), addCmd())
	return root
}

func openSource(ctx context.Context) (*source.Source, error) {
	return source.Open(ctx, cfg)
}

func plainOutput() bool {
	if plain {
		return true
	}
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}
