package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parse/jsonval"
)

func newJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "json [input]",
		Short:         "Decode a JSON document and print it back in compact form",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			log.Debugf("decoding %d bytes of JSON", len(input))
			value, err := jsonval.Decode(input)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			fmt.Println(value.Encode())
			return nil
		},
	}
}
