package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alecthomas/repr"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vippsas/sqllex"
	"github.com/vippsas/sqllex/sqlparser/mysql"
	"github.com/vippsas/sqllex/sqlparser/sqldocument"
)

// Token class styles for --color
var (
	keywordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	identStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	literalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	punctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	posStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

var (
	tokenizeFormat string
	tokenizeColor  bool
	tokenizeValues bool
)

func tokenStyle(t mysql.Token) lipgloss.Style {
	switch {
	case t.ID.IsKeyword():
		return keywordStyle
	case t.ID.IsIdentifier():
		return identStyle
	case t.ID.IsLiteral():
		return literalStyle
	default:
		return punctStyle
	}
}

func printTokens(w io.Writer, statements []sqllex.Statement, format string, color, values bool) error {
	render := func(style lipgloss.Style, s string) string {
		if !color {
			return s
		}
		return style.Render(s)
	}

	switch format {
	case "repr":
		for _, stmt := range statements {
			fmt.Fprintln(w, repr.String(stmt.Tokens, repr.Indent("  "), repr.OmitEmpty(true)))
		}
		return nil
	case "table":
	default:
		return errors.Errorf("unknown format %q; use table or repr", format)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, stmt := range statements {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		for _, t := range stmt.Tokens {
			text := t.Text
			if values && (t.ID.IsIdentifier() || t.ID.IsLiteral()) {
				text = fmt.Sprintf("%s  %q", text, t.Value.Text)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n",
				render(posStyle, fmt.Sprintf("%d:%d", t.Pos.Line, t.Pos.Col)),
				render(tokenStyle(t), t.ID.String()),
				text)
		}
		for _, warning := range stmt.Warnings {
			fmt.Fprintf(tw, "%s\twarning\t%s\n",
				render(posStyle, fmt.Sprintf("%d:%d", warning.Pos.Line, warning.Pos.Col)),
				warning.Message)
		}
	}
	return tw.Flush()
}

var (
	tokenizeCmd = &cobra.Command{
		Use:   "tokenize [file.sql...]",
		Short: "Print the tokens of each statement in the given files, or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			inputs, err := readInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, in := range inputs {
				opts := cfg.Options.Options
				opts.File = sqldocument.FileRef(in.name)
				statements, err := sqllex.Split(in.text, opts)
				if perr := printTokens(out, statements, tokenizeFormat, tokenizeColor, tokenizeValues); perr != nil {
					return perr
				}
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), errorStyleIf(tokenizeColor, err.Error()))
					return err
				}
			}
			return nil
		},
	}
)

func errorStyleIf(color bool, s string) string {
	if !color {
		return s
	}
	return errorStyle.Render(s)
}

func init() {
	tokenizeCmd.Flags().StringVarP(&tokenizeFormat, "format", "f", "table", "output format; table or repr")
	tokenizeCmd.Flags().BoolVar(&tokenizeColor, "color", false, "color token classes")
	tokenizeCmd.Flags().BoolVar(&tokenizeValues, "values", false, "also print the unquoted value of identifiers and literals")
	rootCmd.AddCommand(tokenizeCmd)
}
