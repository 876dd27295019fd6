package cmd

import (
	"fmt"
	"os"
	"strings"

	ci "github.com/libp2p/go-libp2p/core/crypto"
	peer "github.com/libp2p/go-libp2p/core/peer"
	"github.com/spf13/cobra"
)

var keyTypes = map[string]int{
	"ed25519":   ci.Ed25519,
	"rsa":       ci.RSA,
	"secp256k1": ci.Secp256k1,
	"ecdsa":     ci.ECDSA,
}

// keygenCmd represents the keygen command
var keygenCmd = &cobra.Command{
	Use:   "keygen <key-file>",
	Short: "Generate a key pair for publishing records",
	Long: `Generate a key pair and write the private key to key-file in the
libp2p key format. The name records are published under (its peer ID) is
printed to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, _ := cmd.Flags().GetString("type")
		bits, _ := cmd.Flags().GetInt("bits")

		id, err := generateKey(args[0], typ, bits)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
		return nil
	},
}

func generateKey(file, typ string, bits int) (peer.ID, error) {
	kt, ok := keyTypes[strings.ToLower(typ)]
	if !ok {
		return "", fmt.Errorf("unknown key type %q", typ)
	}

	sk, _, err := ci.GenerateKeyPair(kt, bits)
	if err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	b, err := ci.MarshalPrivateKey(sk)
	if err != nil {
		return "", fmt.Errorf("failed to encode key: %w", err)
	}
	if err := os.WriteFile(file, b, 0600); err != nil {
		return "", fmt.Errorf("failed to write key: %w", err)
	}

	id, err := peer.IDFromPrivateKey(sk)
	if err != nil {
		return "", err
	}
	log.Infof("generated %s key for %s", typ, id)
	return id, nil
}

func init() {
	rootCmd.AddCommand(keygenCmd)

	keygenCmd.Flags().StringP("type", "t", "ed25519", "Key type (ed25519, rsa, secp256k1, ecdsa)")
	keygenCmd.Flags().Int("bits", 2048, "Key size, for RSA keys only")
}
