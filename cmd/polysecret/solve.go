// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/polysecret/config"
	"github.com/katalvlaran/polysecret/plot"
	"github.com/katalvlaran/polysecret/secret"
	"github.com/katalvlaran/polysecret/sharefile"
)

// solveFlags are the per-invocation overrides of the config file.
type solveFlags struct {
	raw     bool
	verify  bool
	workers int
	plotDir string
	format  string
}

// report is the JSON form of one result.
type report struct {
	File         string    `json:"file"`
	Secret       float64   `json:"secret"`
	Raw          float64   `json:"raw"`
	Rounded      bool      `json:"rounded"`
	Coefficients []float64 `json:"coefficients"`
	Used         int       `json:"used"`
	Verified     int       `json:"verified,omitempty"`
	Fingerprint  string    `json:"fingerprint"`
}

func (a *app) solveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Recover the secret of one or more share documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.applySolveFlags(cmd, &f)
			return a.solve(cmd, args, f)
		},
	}
	cmd.Flags().BoolVar(&f.raw, "raw", false, "Print the unrounded constant term")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "Check shares beyond the first k against the polynomial")
	cmd.Flags().IntVar(&f.workers, "workers", secret.DefaultWorkers, "Files reconstructed in parallel")
	cmd.Flags().StringVar(&f.plotDir, "plot", "", "Write an HTML chart per file into this directory")
	cmd.Flags().StringVar(&f.format, "format", config.FormatText, "Output format: text or json")

	return cmd
}

// applySolveFlags fills unset flags from the loaded config.
func (a *app) applySolveFlags(cmd *cobra.Command, f *solveFlags) {
	fl := cmd.Flags()
	r := a.cfg.Reconstruct
	if !fl.Changed("raw") {
		f.raw = !r.Round
	}
	if !fl.Changed("verify") {
		f.verify = r.Verify
	}
	if !fl.Changed("workers") {
		f.workers = r.Workers
	}
	if !fl.Changed("format") {
		f.format = a.cfg.Output.Format
	}
}

func (a *app) options(f solveFlags) ([]secret.Option, error) {
	cfg := *a.cfg
	cfg.Reconstruct.Round = !f.raw
	cfg.Reconstruct.Verify = f.verify
	cfg.Reconstruct.Workers = f.workers
	cfg.Output.Format = f.format
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg.Options(a.logger), nil
}

func (a *app) solve(cmd *cobra.Command, files []string, f solveFlags) error {
	opts, err := a.options(f)
	if err != nil {
		return err
	}

	inputs := make([]secret.Input, len(files))
	for i, path := range files {
		if inputs[i], err = sharefile.Load(path); err != nil {
			return err
		}
		a.logger.Debug("share file loaded", zap.String("file", path), zap.Int("shares", len(inputs[i].Shares)))
	}

	results, err := secret.ReconstructAll(cmd.Context(), inputs, opts...)
	if err != nil {
		return err
	}

	if f.plotDir != "" {
		if err = writePlots(f.plotDir, files, results); err != nil {
			return err
		}
	}

	reports := make([]report, len(results))
	for i, res := range results {
		reports[i] = report{
			File:         files[i],
			Secret:       res.Secret,
			Raw:          res.Raw,
			Rounded:      res.Rounded,
			Coefficients: res.Coefficients,
			Used:         len(res.Used),
			Fingerprint:  res.Fingerprint,
		}
		if f.verify {
			reports[i].Verified = len(res.Unused)
		}
	}
	a.logger.Info("reconstruction finished", zap.Int("files", len(files)))

	out := cmd.OutOrStdout()
	if f.format == config.FormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	return printText(out, reports, f.raw, a.cfg.Output.Color)
}

func writePlots(dir string, files []string, results []*secret.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("plot dir: %w", err)
	}
	for i, res := range results {
		name := strings.TrimSuffix(filepath.Base(files[i]), filepath.Ext(files[i])) + ".html"
		fh, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		err = plot.Render(fh, res, nil)
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// printText writes one styled line per file: "file: secret".
func printText(w io.Writer, reports []report, raw, color bool) error {
	r := lipgloss.NewRenderer(w)
	fileStyle := r.NewStyle().Bold(true)
	secretStyle := r.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	noteStyle := r.NewStyle().Faint(true)
	if !color {
		fileStyle, secretStyle, noteStyle = r.NewStyle(), r.NewStyle(), r.NewStyle()
	}

	for _, rep := range reports {
		value := formatFloat(rep.Secret)
		if raw {
			value = fmt.Sprintf("%v", rep.Raw)
		}
		note := fmt.Sprintf("k=%d fp=%.12s", rep.Used, rep.Fingerprint)
		if rep.Verified > 0 {
			note += fmt.Sprintf(" verified=%d", rep.Verified)
		}
		if _, err := fmt.Fprintf(w, "%s: %s  %s\n",
			fileStyle.Render(rep.File), secretStyle.Render(value), noteStyle.Render(note)); err != nil {
			return err
		}
	}

	return nil
}

// formatFloat prints integral values without exponent or fraction.
func formatFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}

	return fmt.Sprintf("%v", v)
}
