package cmd

import (
	"fmt"
	"os"
	"strings"

	ipns "github.com/dirkmc/go-ipns"
	peer "github.com/libp2p/go-libp2p/core/peer"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <name> <record-file>",
	Short: "Check a record against the name it was published under",
	Long: `Check that the record in record-file is a valid, unexpired record
for name. The name is a peer ID, optionally prefixed with /ipns/.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := peer.Decode(strings.TrimPrefix(args[0], "/ipns/"))
		if err != nil {
			return fmt.Errorf("invalid name %q: %w", args[0], err)
		}
		raw, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read record: %w", err)
		}

		if err := (ipns.Validator{}).Validate(string(ipns.RoutingKey(id)), raw); err != nil {
			return fmt.Errorf("record is not valid for %s: %w", id, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "record is valid for %s\n", id)
		fmt.Fprintf(cmd.OutOrStdout(), "local key: %s\n", ipns.LocalKey(id))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
