package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var digestPositions bool

var (
	digestCmd = &cobra.Command{
		Use:   "digest",
		Short: "Group the statements of the directory tree by digest, most frequent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := dep(cmd.Context(), false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, g := range c.Digests() {
				fmt.Fprintf(out, "%6d  %s  %s\n", len(g.Statements), g.Hash[:16], g.Text)
				if digestPositions {
					for _, stmt := range g.Statements {
						fmt.Fprintf(out, "        %s\n", stmt.Pos)
					}
				}
			}
			return nil
		},
	}
)

func init() {
	digestCmd.Flags().BoolVarP(&digestPositions, "positions", "p", false, "list where each statement is")
	rootCmd.AddCommand(digestCmd)
}
