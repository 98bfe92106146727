package seekr

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seekr/seekr/internal/vault"
)

var (
	flagVaultIn   string
	flagVaultOut  string
	flagVaultPass string
)

func init() {
	vaultCmd := &cobra.Command{
		Use:   "vault",
		Short: "Encrypt or decrypt a file with a passphrase",
	}
	rootCmd.AddCommand(vaultCmd)

	vaultCmd.PersistentFlags().StringVar(&flagVaultIn, "in", "", "input file")
	vaultCmd.PersistentFlags().StringVar(&flagVaultOut, "out", "", "output file")
	vaultCmd.PersistentFlags().StringVar(&flagVaultPass, "passphrase", "", "passphrase")

	vaultCmd.AddCommand(&cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt --in to --out",
		RunE: func(_ *cobra.Command, _ []string) error {
			return vaultRun(vault.Encrypt)
		},
	})
	vaultCmd.AddCommand(&cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt --in to --out",
		RunE: func(_ *cobra.Command, _ []string) error {
			return vaultRun(vault.Decrypt)
		},
	})
}

func vaultRun(op func([]byte, string) ([]byte, error)) error {
	if flagVaultIn == "" || flagVaultOut == "" {
		return fmt.Errorf("--in and --out are required")
	}
	data, err := os.ReadFile(flagVaultIn)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	out, err := op(data, flagVaultPass)
	if err != nil {
		return err
	}
	// Written 0600: output may be plaintext after a decrypt.
	if err := os.WriteFile(flagVaultOut, out, 0600); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d bytes)\n", flagVaultOut, len(out))
	return nil
}
