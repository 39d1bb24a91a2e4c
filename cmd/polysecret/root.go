// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/rs/xid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/polysecret/config"
)

// app carries the state shared by every subcommand.
type app struct {
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger // built in PersistentPreRunE unless preset
}

func newApp() *app { return &app{} }

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "polysecret",
		Short: "Recover a polynomial secret from base-encoded shares",
		Long: `polysecret reads share documents, decodes every share value from its base,
solves the Vandermonde system of the first k shares and prints the constant
term of the interpolating polynomial.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(a.solveCmd(), a.splitCmd(), a.promptCmd())

	return root
}

// setup loads the configuration and builds the run logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger == nil {
		lvl, _ := cfg.ZapLevel() // validated by Load
		if a.verbose {
			lvl = zapcore.DebugLevel
		}
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
		if a.logger, err = zcfg.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}
	a.logger = a.logger.With(zap.String("run", xid.New().String()))
	a.logger.Debug("config loaded", zap.String("path", a.cfgPath), zap.String("command", cmd.Name()))

	return nil
}
