package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"addressbook/contact"
)

// add: write one contact into the configured source.
func addCmd() *cobra.Command {
	var street, city, state, country string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a contact to the configured source",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := openSource(cmd.Context())
			if err != nil {
				return err
			}
			defer src.Close()

			c := contact.Contact{Street: street, City: city, State: state}
			if cmd.Flags().Changed("country") {
				c.Country = contact.Country(country)
			}

			if err := contact.NewUsecase(src.Repository).AddContact(cmd.Context(), c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", contact.FormatAddress(c))
			return nil
		},
	}
	cmd.Flags().StringVar(&street, "street", "", "street line")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&state, "state", "", "state")
	cmd.Flags().StringVar(&country, "country", "", "country code, omit to store a contact without country")
	_ = cmd.MarkFlagRequired("street")
	_ = cmd.MarkFlagRequired("city")
	_ = cmd.MarkFlagRequired("state")
	return cmd
}
