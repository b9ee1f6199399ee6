package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vippsas/sqllex"
)

func dep(ctx context.Context, partialResults bool) (sqllex.Collection, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return sqllex.Collection{}, err
	}
	opts := cfg.Options
	opts.PartialResults = partialResults
	return sqllex.Include(ctx, opts, os.DirFS(directory))
}

var (
	depCmd = &cobra.Command{
		Use:   "dep",
		Short: "Scan the directory tree and report which files were discovered and how many statements they hold",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				_ = cmd.Help()
				return errors.New("Too many arguments")
			}
			c, err := dep(cmd.Context(), true)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(c.Files) == 0 {
				fmt.Fprintln(out, "No SQL files found in given paths")
			}
			if len(c.Errors) > 0 {
				fmt.Fprintln(out, "Errors:")
				for _, e := range c.Errors {
					fmt.Fprintf(out, "%s:%d:%d: %s\n", e.Pos.File, e.Pos.Line, e.Pos.Col, e.Message)
				}
				fmt.Fprintln(out)
			}
			for _, f := range c.Files {
				fmt.Fprintf(out, "%s: %d statements\n", f.Path, len(f.Statements))
				for _, stmt := range f.Statements {
					for _, w := range stmt.Warnings {
						fmt.Fprintf(out, "  %s: warning: %s\n", w.Pos, w.Message)
					}
				}
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(depCmd)
}
