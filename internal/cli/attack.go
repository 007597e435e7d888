package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/askern/polycipher/pkg/attack"
	"github.com/askern/polycipher/pkg/errors"
	"github.com/askern/polycipher/pkg/observability"
)

// newAttackCmd creates the attack command.
func newAttackCmd() *cobra.Command {
	var nodes []string

	cmd := &cobra.Command{
		Use:   "attack <plaintext>",
		Short: "Simulate cryptanalysis attacks against a cipher chain",
		Long: `Simulate cryptanalysis attacks against a cipher chain.

Runs a frequency-analysis estimate and a brute-force time estimate against
the chain's output, and scans the ciphertext for repeating or sequential
letter patterns.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			plaintext := args[0]

			if err := errors.ValidatePlaintext(plaintext); err != nil {
				return err
			}
			p, err := parseChain(nodes)
			if err != nil {
				return err
			}

			ciphertext := p.Encrypt(plaintext)
			start := time.Now()
			report := attack.RunAttacks(plaintext, ciphertext, p)
			observability.Engine().OnAttack(cmd.Context(), report.TotalPenalty, time.Since(start))
			logger.Debug("attacks complete", "total_penalty", report.TotalPenalty)

			printKeyValue("ciphertext", ciphertext)
			fmt.Println()
			printAttackReport(report, attack.DetectPatterns(ciphertext))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&nodes, "node", "n", nil, "cipher node spec (repeatable)")
	return cmd
}
