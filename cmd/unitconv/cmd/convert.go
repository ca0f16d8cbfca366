// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"
)

// FlagRaw makes convert print the bare amount at full float64 precision.
const FlagRaw = "raw"

func convertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <amount> <from> <to>",
		Short: "Convert an amount from one unit to another",
		Example: `  unitconv convert 100 °C °F
  unitconv convert 26.2 mi km --raw`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil || math.IsInf(amount, 0) || math.IsNaN(amount) {
				return fmt.Errorf("%q: %w", args[0], ErrInvalidAmount)
			}
			from, err := a.sys.Lookup(args[1])
			if err != nil {
				return err
			}
			to, err := a.sys.Lookup(args[2])
			if err != nil {
				return err
			}

			q, err := from.Of(amount).In(to)
			if err != nil {
				return err
			}
			a.log.Debug().
				Float64("amount", amount).
				Str("from", from.Symbol()).
				Str("to", to.Symbol()).
				Float64("canonical", q.Value()).
				Msg("converted")

			raw, err := cmd.Flags().GetBool(FlagRaw)
			if err != nil {
				return err
			}
			if raw {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(q.Amount(), 'g', -1, 64))
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), q)

			return err
		},
	}

	cmd.Flags().Bool(FlagRaw, false, "print the bare amount at full precision")

	return cmd
}
