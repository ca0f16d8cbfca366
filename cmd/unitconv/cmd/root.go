// SPDX-License-Identifier: MIT

// Package cmd holds the cobra commands of unitconv.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvunits/arithmetic"
	"github.com/katalvlaran/lvunits/si"
	"github.com/katalvlaran/lvunits/unit"
)

// Persistent flags of the root command.
const (
	// FlagLogLevel selects the zerolog level: trace, debug, info, warn or error.
	FlagLogLevel = "log-level"
	// FlagLogFormat selects LogFormatJSON or LogFormatPlain.
	FlagLogFormat = "log-format"
	// FlagUnitsFile names a YAML UnitsFile loaded before every command.
	FlagUnitsFile = "units-file"
)

// EnvPrefix prefixes the environment variables bound to every flag,
// e.g. UNITCONV_UNITS_FILE.
const EnvPrefix = "UNITCONV"

// Values accepted by FlagLogFormat.
const (
	// LogFormatJSON writes one JSON object per log line.
	LogFormatJSON = "json"
	// LogFormatPlain writes human-readable lines without timestamps.
	LogFormatPlain = "plain"
)

// app is the state shared by the subcommands once the root pre-run has
// configured it.
type app struct {
	v   *viper.Viper
	log zerolog.Logger
	sys *si.System[float64]
}

// NewRootCmd returns the unitconv command tree. Every call builds its own
// configuration and unit system.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:          "unitconv",
		Short:        "Convert quantities between units of measure",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String(FlagLogLevel, zerolog.InfoLevel.String(), "log level (trace|debug|info|warn|error)")
	pf.String(FlagLogFormat, LogFormatPlain, "log format (json|plain)")
	pf.String(FlagUnitsFile, "", "YAML file declaring additional units")

	root.AddCommand(
		convertCmd(a),
		listCmd(a),
		describeCmd(a),
		deriveCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := bindFlags(cmd, a.v, []string{EnvPrefix}); err != nil {
		return err
	}

	log, err := newLogger(cmd.ErrOrStderr(), a.v.GetString(FlagLogLevel), a.v.GetString(FlagLogFormat))
	if err != nil {
		return err
	}
	a.log = log

	a.sys, err = si.NewSystem(unit.Float, arithmetic.Float64{})
	if err != nil {
		return err
	}

	if path := a.v.GetString(FlagUnitsFile); path != "" {
		n, err := loadUnitsFile(path, a.sys)
		if err != nil {
			return err
		}
		a.log.Debug().Str("file", path).Int("units", n).Msg("units file loaded")
	}

	return nil
}

func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("failed to parse log level (%s): %w", level, err)
	}

	switch strings.ToLower(format) {
	case LogFormatJSON:
	case LogFormatPlain:
		w = zerolog.ConsoleWriter{
			Out:          w,
			NoColor:      true,
			PartsExclude: []string{zerolog.TimestampFieldName},
		}
	default:
		return zerolog.Nop(), fmt.Errorf("%q: %w", format, ErrLogFormat)
	}

	return zerolog.New(w).Level(lvl), nil
}

// bindFlags binds every flag of cmd to viper and to PREFIX_FLAG_NAME
// environment variables, then copies values viper found back into flags the
// user did not set.
func bindFlags(cmd *cobra.Command, v *viper.Viper, envPrefixes []string) error {
	var err error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}

		envBody := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		for _, prefix := range envPrefixes {
			if err = v.BindEnv(f.Name, fmt.Sprintf("%s_%s", prefix, envBody)); err != nil {
				return
			}
		}

		if err = v.BindPFlag(f.Name, f); err != nil {
			return
		}

		if !f.Changed && v.IsSet(f.Name) {
			err = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	return err
}
