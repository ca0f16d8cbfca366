// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvunits/si"
	"github.com/katalvlaran/lvunits/unit"
)

// Description is the YAML document printed by describe and derive.
type Description struct {
	Symbol    string  `yaml:"symbol"`
	Name      string  `yaml:"name,omitempty"`
	Dimension string  `yaml:"dimension"`
	Scale     float64 `yaml:"scale"`
	Offset    float64 `yaml:"offset,omitempty"`
}

func describe(u *unit.Unit[float64]) Description {
	return Description{
		Symbol:    u.Symbol(),
		Name:      si.DimensionName(u.Dimension()),
		Dimension: u.Dimension().String(),
		Scale:     u.Scale(),
		Offset:    u.Offset(),
	}
}

func printDescription(cmd *cobra.Command, u *unit.Unit[float64]) error {
	out, err := yaml.Marshal(describe(u))
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)

	return err
}

func describeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <symbol>",
		Short: "Print the dimension, scale and offset of a unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.sys.Lookup(args[0])
			if err != nil {
				return err
			}

			return printDescription(cmd, u)
		},
	}
}

func deriveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "derive <a> times|per <b>",
		Short: "Describe the product or quotient of two units",
		Example: `  unitconv derive kg times m
  unitconv derive km per h`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.sys.Lookup(args[0])
			if err != nil {
				return err
			}
			y, err := a.sys.Lookup(args[2])
			if err != nil {
				return err
			}

			var u *unit.Unit[float64]
			switch args[1] {
			case "times":
				u, err = x.Times(y)
			case "per":
				u, err = x.Per(y)
			default:
				return fmt.Errorf("%q: %w", args[1], ErrUnknownOperator)
			}
			if err != nil {
				return err
			}

			return printDescription(cmd, u)
		},
	}
}
