package cmd

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"
)

var genkeyCmd = &cobra.Command{
	Use:   "genkey",
	Short: "Generate an Ed25519 keypair for signing rule packs",
	RunE:  runGenkey,
}

func init() {
	rootCmd.AddCommand(genkeyCmd)
}

func runGenkey(cmd *cobra.Command, args []string) error {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "public_key:  %s\n", base64.StdEncoding.EncodeToString(pub))
	fmt.Fprintf(cmd.OutOrStdout(), "private_key: %s\n", base64.StdEncoding.EncodeToString(priv))
	return nil
}
