package cmd

import (
	"fmt"
	"os"
	"time"

	rec "github.com/dirkmc/go-ipns/record"
	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create <value>",
	Short: "Create and sign a record",
	Long: `Create a record pointing the name of --key at value, which is either
a path such as /ipfs/<cid> or a bare CID. The marshaled record is written
to --out, or to stdout when --out is not given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyFile, _ := cmd.Flags().GetString("key")
		seq, _ := cmd.Flags().GetUint64("seq")
		lifetime, _ := cmd.Flags().GetDuration("lifetime")
		expiration, _ := cmd.Flags().GetString("expiration")
		ttl, _ := cmd.Flags().GetDuration("ttl")
		v1, _ := cmd.Flags().GetBool("v1-compatible")
		out, _ := cmd.Flags().GetString("out")

		sk, err := loadKey(keyFile)
		if err != nil {
			return err
		}
		id, err := rec.NewIdentity(sk)
		if err != nil {
			return err
		}

		opts := []rec.Option{rec.WithTTL(ttl), rec.WithV1Compatibility(v1)}
		var r *rec.Record
		if expiration != "" {
			r, err = rec.CreateWithExpiration(id, args[0], seq, expiration, opts...)
		} else {
			r, err = rec.Create(id, args[0], seq, lifetime, opts...)
		}
		if err != nil {
			return fmt.Errorf("failed to create record: %w", err)
		}

		raw, err := rec.Marshal(r)
		if err != nil {
			return err
		}

		if out == "" {
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		}
		if err := os.WriteFile(out, raw, 0644); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
		log.Infof("wrote %d byte record for %s to %s", len(raw), id.ID, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringP("key", "k", "", "Private key file, as written by keygen")
	createCmd.Flags().Uint64P("seq", "s", 0, "Sequence number")
	createCmd.Flags().Duration("lifetime", 24*time.Hour, "How long the record stays valid")
	createCmd.Flags().String("expiration", "", "Explicit RFC3339 expiration, overrides --lifetime")
	createCmd.Flags().Duration("ttl", rec.DefaultTTL, "Cache TTL hint")
	createCmd.Flags().Bool("v1-compatible", true, "Add the legacy V1 signature")
	createCmd.Flags().StringP("out", "o", "", "Output file")
	_ = createCmd.MarkFlagRequired("key")
}
