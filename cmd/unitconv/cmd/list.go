// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvunits/si"
	"github.com/katalvlaran/lvunits/unit"
)

// FlagDimension restricts list to the units of one named dimension.
const FlagDimension = "dimension"

func listCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, err := cmd.Flags().GetString(FlagDimension)
			if err != nil {
				return err
			}

			units := a.sys.Units()
			if name != "" {
				dim, err := si.DimensionByName(name)
				if err != nil {
					return err
				}
				units = a.sys.ByDimension(dim)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, u := range units {
				fmt.Fprintf(tw, "%s\t%s\n", u.Symbol(), dimensionLabel(u))
			}

			return tw.Flush()
		},
	}

	cmd.Flags().String(FlagDimension, "", "only list units of this dimension, e.g. length or speed")

	return cmd
}

// dimensionLabel prefers the catalog name and falls back to the raw vector.
func dimensionLabel(u *unit.Unit[float64]) string {
	if name := si.DimensionName(u.Dimension()); name != "" {
		return name
	}

	return u.Dimension().String()
}
