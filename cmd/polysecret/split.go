// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/polysecret/secret"
	"github.com/katalvlaran/polysecret/sharefile"
)

func (a *app) splitCmd() *cobra.Command {
	var (
		value  int64
		coeffs []int64
		xs     []int
		base   int
		out    string
	)
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Generate shares of a secret as a JSON share document",
		Long: `split evaluates secret + c1·x + c2·x^2 + ... at every --xs coordinate and
writes each value in --base. The threshold k is 1 + len(--coeffs).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := secret.Split(append([]int64{value}, coeffs...), xs, base)
			if err != nil {
				return err
			}
			data, err := sharefile.MarshalJSON(in)
			if err != nil {
				return err
			}
			data = append(data, '\n')
			a.logger.Debug("shares generated", zap.Int("n", in.Meta.N), zap.Int("k", in.Meta.K), zap.Int("base", base))

			if out != "" {
				if err = os.WriteFile(out, data, 0o600); err != nil {
					return fmt.Errorf("split: %w", err)
				}
				return nil
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
	cmd.Flags().Int64Var(&value, "secret", 0, "Secret (constant term), non-negative")
	cmd.Flags().Int64SliceVar(&coeffs, "coeffs", nil, "Higher-order coefficients c1,c2,...")
	cmd.Flags().IntSliceVar(&xs, "xs", nil, "Share x-coordinates (>= 1, distinct)")
	cmd.Flags().IntVar(&base, "base", 10, "Base of the share values (2-36)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the document to this file instead of stdout")
	_ = cmd.MarkFlagRequired("secret")
	_ = cmd.MarkFlagRequired("xs")

	return cmd
}
