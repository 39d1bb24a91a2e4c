// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/polysecret/secret"
)

// askOne is replaced in tests; the terminal is not available there.
var askOne = survey.AskOne

// promptInput collects a share document interactively.
func promptInput() (secret.Input, error) {
	var kText, nText string
	if err := askOne(&survey.Input{Message: "Shares required (k):"}, &kText, survey.WithValidator(survey.Required)); err != nil {
		return secret.Input{}, err
	}
	if err := askOne(&survey.Input{Message: "Shares to enter (n):", Default: kText}, &nText); err != nil {
		return secret.Input{}, err
	}
	k, errK := strconv.Atoi(kText)
	n, errN := strconv.Atoi(nText)
	if errK != nil || errN != nil || k < 1 || n < k {
		return secret.Input{}, fmt.Errorf("prompt: need integers 1 <= k <= n, got k=%q n=%q", kText, nText)
	}

	in := secret.Input{Meta: &secret.Metadata{N: n, K: k}}
	for i := 1; i <= n; i++ {
		var s secret.Share
		if err := askOne(&survey.Input{Message: fmt.Sprintf("Share %d x:", i), Default: strconv.Itoa(i)}, &s.Key); err != nil {
			return secret.Input{}, err
		}
		if err := askOne(&survey.Input{Message: fmt.Sprintf("Share %d base:", i), Default: "10"}, &s.Base); err != nil {
			return secret.Input{}, err
		}
		if err := askOne(&survey.Input{Message: fmt.Sprintf("Share %d value:", i)}, &s.Value, survey.WithValidator(survey.Required)); err != nil {
			return secret.Input{}, err
		}
		in.Shares = append(in.Shares, s)
	}

	return in, nil
}

func (a *app) promptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Enter shares interactively and recover the secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := promptInput()
			if err != nil {
				return err
			}

			var verify bool
			if in.Meta.N > in.Meta.K {
				if err = askOne(&survey.Confirm{Message: "Verify the extra shares?", Default: true}, &verify); err != nil {
					return err
				}
			}
			f := solveFlags{
				raw:     !a.cfg.Reconstruct.Round,
				verify:  verify,
				workers: 1,
				format:  a.cfg.Output.Format,
			}
			opts, err := a.options(f)
			if err != nil {
				return err
			}

			res, err := secret.Reconstruct(in, opts...)
			if err != nil {
				return err
			}
			value := formatFloat(res.Secret)
			if f.raw {
				value = fmt.Sprintf("%v", res.Raw)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "secret: %s\n", value)

			return err
		},
	}
}
