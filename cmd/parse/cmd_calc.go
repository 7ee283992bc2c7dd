package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parse/calc"
)

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "calc [expression]",
		Short:         "Evaluate an arithmetic expression",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			result, err := calc.Eval(input)
			if err != nil {
				return fmt.Errorf("evaluate: %w", err)
			}

			log.Debugf("evaluated %q", input)
			fmt.Println(strconv.FormatFloat(result, 'g', -1, 64))
			return nil
		},
	}
}
