// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	flagMax     = "max"
	flagPackage = "package"
	flagOutput  = "output"
)

func newRootCmd(log zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "genexponent",
		Short:        "Generate the bounded exponent lookup tables",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bound, err := cmd.Flags().GetInt(flagMax)
			if err != nil {
				return err
			}
			pkg, err := cmd.Flags().GetString(flagPackage)
			if err != nil {
				return err
			}
			out, err := cmd.Flags().GetString(flagOutput)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err = generate(&buf, pkg, bound); err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err = os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			log.Info().
				Str("file", out).
				Str("package", pkg).
				Int("max", bound).
				Msg("exponent tables generated")

			return nil
		},
	}

	cmd.Flags().Int(flagMax, 4, "largest exponent magnitude")
	cmd.Flags().String(flagPackage, "exponent", "package clause of the generated file")
	cmd.Flags().StringP(flagOutput, "o", "", "output file, stdout when empty or -")

	return cmd
}
