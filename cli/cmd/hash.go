package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	hashCmd = &cobra.Command{
		Use:   "hash",
		Short: "Compute a hash of the statement shapes in the directory tree; it changes only when a digest does",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := dep(cmd.Context(), false)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), c.Fingerprint())
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(hashCmd)
}
