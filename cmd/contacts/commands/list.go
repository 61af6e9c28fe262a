package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"addressbook/contact"
	"addressbook/pkg/sentry"
	"addressbook/terminal"
)

// list: show every contact that has a country.
func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the contacts of the configured source",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			src, err := openSource(ctx)
			if err != nil {
				return err
			}
			defer src.Close()

			gateway := contact.NewRepositoryGateway(src.Repository,
				contact.WithGatewayLogger(logger.With("source", src.Name)),
			)

			opts := []terminal.Option{
				terminal.WithPresenterOptions(
					contact.WithLogger(logger),
					contact.WithFailureReporter(sentry.NewReporter(map[string]string{"source": src.Name})),
				),
			}
			if plainOutput() {
				opts = append(opts, terminal.WithPlainOutput(true))
			}

			screen := terminal.NewScreen(gateway, cmd.OutOrStdout(), opts...)
			screen.Start(ctx)

			select {
			case <-screen.Settled():
			case <-ctx.Done():
				return fmt.Errorf("contacts source did not answer within %s", timeout)
			}
			if err := screen.Err(); err != nil {
				return errors.Join(errors.New("cannot list contacts"), err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print one unstyled address per line")
	return cmd
}
