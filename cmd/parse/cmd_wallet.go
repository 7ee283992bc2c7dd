package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parse/wallet"
)

func newWalletCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "wallet [listing]",
		Short:         "Parse a currency listing such as '10.50 USD, 3 EUR'",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			w, err := wallet.Parse(input)
			if err != nil {
				return fmt.Errorf("parse listing: %w", err)
			}

			log.Debugf("parsed %d currencies", len(w))
			fmt.Println(w.String())
			return nil
		},
	}
}
