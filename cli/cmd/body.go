package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vippsas/sqllex"
	"github.com/vippsas/sqllex/sqlparser/sqldocument"
)

var (
	bodyCmd = &cobra.Command{
		Use:   "body [file.sql...]",
		Short: "Print each statement converted to UTF-8, with version comments resolved",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			inputs, err := readInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			for _, in := range inputs {
				opts := cfg.Options.Options
				opts.File = sqldocument.FileRef(in.name)
				opts.BodyUTF8 = true
				statements, err := sqllex.Split(in.text, opts)
				for _, stmt := range statements {
					fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(stmt.Body))
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(bodyCmd)
}
