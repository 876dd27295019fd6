package cmd

import (
	"fmt"
	"os"

	logging "github.com/ipfs/go-log/v2"
	ci "github.com/libp2p/go-libp2p/core/crypto"
	"github.com/spf13/cobra"
)

var log = logging.Logger("ipns/cmd")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ipns",
	Short: "Create, inspect and validate IPNS records",
	Long: `ipns works with single IPNS records stored in files: it signs new
records with a local key, prints their contents and checks them against
the name they were published under.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		if err := logging.SetLogLevelRegex("^ipns", level); err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "error", "Log level of the ipns loggers (debug, info, warn, error)")
}

func loadKey(file string) (ci.PrivKey, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read key: %w", err)
	}
	sk, err := ci.UnmarshalPrivateKey(b)
	if err != nil {
		return nil, fmt.Errorf("failed to decode key %s: %w", file, err)
	}
	return sk, nil
}
