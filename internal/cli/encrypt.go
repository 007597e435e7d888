package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/askern/polycipher/pkg/errors"
	"github.com/askern/polycipher/pkg/observability"
)

// newEncryptCmd creates the encrypt command.
func newEncryptCmd() *cobra.Command {
	var nodes []string

	cmd := &cobra.Command{
		Use:   "encrypt <plaintext>",
		Short: "Run plaintext through a cipher chain",
		Long: `Run plaintext through a cipher chain.

The chain is built from repeated --node flags, applied in order:

  polycipher encrypt "HELLO WORLD" --node shift:3 --node reverse
  polycipher encrypt "SECRET" --node polygon:0,0;300,0;0,400`,
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

			start := time.Now()
			ciphertext := p.Encrypt(plaintext)
			observability.Engine().OnEncrypt(cmd.Context(), p.Len(), len(plaintext), time.Since(start))
			logger.Debug("encrypted", "nodes", p.Len(), "chars", len(plaintext))

			for _, step := range p.Describe() {
				printDetail("%s", step)
			}
			fmt.Println(StyleValue.Render(ciphertext))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&nodes, "node", "n", nil, "cipher node spec (repeatable): shift:K, reverse, multiply:K, polygon:x,y;x,y;...")
	return cmd
}
