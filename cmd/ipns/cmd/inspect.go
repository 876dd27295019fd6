package cmd

import (
	"fmt"
	"io"
	"os"

	ld "github.com/dirkmc/go-ipns/ipld"
	rec "github.com/dirkmc/go-ipns/record"
	"github.com/spf13/cobra"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <record-file>",
	Short: "Print the contents of a record",
	Long: `Print the envelope fields of a record and its signed data. Nothing is
verified: use validate to check a record.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read record: %w", err)
		}
		r, err := rec.Unmarshal(raw)
		if err != nil {
			return err
		}
		return printRecord(cmd.OutOrStdout(), r)
	},
}

func printRecord(w io.Writer, r *rec.Record) error {
	e := r.Proto()

	fmt.Fprintf(w, "Value:         %s\n", e.GetValue())
	fmt.Fprintf(w, "Validity type: %s\n", e.GetValidityType())
	fmt.Fprintf(w, "Validity:      %s\n", e.GetValidity())
	fmt.Fprintf(w, "Sequence:      %d\n", e.GetSequence())
	if e.Ttl != nil {
		fmt.Fprintf(w, "TTL:           %d\n", e.GetTtl())
	}
	fmt.Fprintf(w, "Signature V1:  %d bytes\n", len(e.GetSignatureV1()))
	fmt.Fprintf(w, "Signature V2:  %d bytes\n", len(e.GetSignatureV2()))
	fmt.Fprintf(w, "Public key:    %d bytes\n", len(e.GetPubKey()))

	if len(e.GetData()) == 0 {
		fmt.Fprintln(w, "Data:          none")
		return nil
	}
	nd, err := ld.Node(e.GetData())
	if err != nil {
		return fmt.Errorf("failed to decode data: %w", err)
	}
	js, err := nd.MarshalJSON()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Data CID:      %s\n", nd.Cid())
	fmt.Fprintf(w, "Data:          %s\n", js)
	return nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
