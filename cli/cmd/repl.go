package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vippsas/sqllex"
	"github.com/vippsas/sqllex/sqlparser/mysql"
)

const (
	historyFile = ".sqllex_history"
	promptMain  = "sqllex> "
	promptCont  = "     -> "
)

// readStatement prompts until the lines entered so far make up a
// statement ending in ';', or until the text fails to lex for a reason
// more lines cannot fix.
func readStatement(ln *liner.State, opts mysql.Options) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" {
			b.Reset()
			continue
		}
		done, err := sqllex.Complete(src, opts)
		if done || (err != nil && !sqllex.IsIncomplete(err)) {
			return src, true
		}
	}
}

var (
	replCmd = &cobra.Command{
		Use:   "repl",
		Short: "Read statements interactively and print their tokens and digest",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			opts := cfg.Options.Options
			opts.File = "repl"
			opts.BodyUTF8 = true

			home, _ := os.UserHomeDir()
			histPath := filepath.Join(home, historyFile)

			ln := liner.NewLiner()
			defer ln.Close()
			ln.SetCtrlCAborts(true)
			if f, err := os.Open(histPath); err == nil {
				_, _ = ln.ReadHistory(f)
				_ = f.Close()
			}
			defer func() {
				if f, err := os.Create(histPath); err == nil {
					_, _ = ln.WriteHistory(f)
					_ = f.Close()
				}
			}()

			out := cmd.OutOrStdout()
			for {
				src, ok := readStatement(ln, opts)
				if !ok {
					fmt.Fprintln(out)
					return nil
				}
				if src == "" {
					continue
				}
				ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

				statements, err := sqllex.Split(src, opts)
				if perr := printTokens(out, statements, "table", true, true); perr != nil {
					return perr
				}
				for _, stmt := range statements {
					fmt.Fprintf(out, "digest: %s\n", stmt.DigestText)
					if stmt.Preprocessed != stmt.Text {
						fmt.Fprintf(out, "preprocessed: %s\n", stmt.Preprocessed)
					}
				}
				if err != nil {
					logrus.WithError(err).Debug("statement failed to lex")
					fmt.Fprintln(out, errorStyle.Render(err.Error()))
				}
			}
		},
	}
)

func init() {
	rootCmd.AddCommand(replCmd)
}
