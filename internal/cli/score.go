package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/askern/polycipher/pkg/errors"
	"github.com/askern/polycipher/pkg/observability"
	"github.com/askern/polycipher/pkg/scoring"
)

// newScoreCmd creates the score command.
func newScoreCmd() *cobra.Command {
	var (
		nodes     []string
		threshold float64
	)

	cmd := &cobra.Command{
		Use:   "score <plaintext>",
		Short: "Compute the strength breakdown for a cipher chain",
		Long: `Compute the strength breakdown for a cipher chain.

The plaintext is encrypted with the chain, then the result is scored on
entropy, diffusion, and key-space size, with penalties for weak output.
With --threshold, the exit status reflects pass/fail.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			plaintext := args[0]

			if err := errors.ValidatePlaintext(plaintext); err != nil {
				return err
			}
			if err := errors.ValidateThreshold(threshold); err != nil {
				return err
			}
			p, err := parseChain(nodes)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			ciphertext := p.Encrypt(plaintext)
			start := time.Now()
			breakdown := scoring.Evaluate(plaintext, ciphertext, p)
			observability.Engine().OnScore(cmd.Context(), breakdown.Final, time.Since(start))
			prog.done("Scored chain")

			printKeyValue("ciphertext", ciphertext)
			fmt.Println()
			printBreakdown(breakdown)

			if cmd.Flags().Changed("threshold") {
				fmt.Println()
				if scoring.CheckPass(breakdown.Final, threshold) {
					printSuccess("passes threshold %.0f", threshold)
				} else {
					printError("below threshold %.0f", threshold)
					return errors.New(errors.ErrCodeLevelLimit, "score %.0f below threshold %.0f", breakdown.Final, threshold)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&nodes, "node", "n", nil, "cipher node spec (repeatable)")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "fail if the final score is below this value")
	return cmd
}
