package cmd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "sqllex",
		Short:        "sqllex",
		SilenceUsage: true,
		Long: `CLI tool for lexing MySQL statements the way the server does: tokens, digests,
preprocessed text and UTF-8 bodies. Options are read from sqllex.yaml in --directory.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
	}

	directory string
	verbose   bool
	logFormat string

	serverVersion int
	sqlMode       string
	charsetName   string
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "path to directory and subtree which will be scanned for *.sql-files and sqllex.yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log lexer warnings and progress")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format; text or json")
	rootCmd.PersistentFlags().IntVar(&serverVersion, "server-version", 0, "server version gating /*!NNNNN comments, e.g. 80036; overrides sqllex.yaml")
	rootCmd.PersistentFlags().StringVar(&sqlMode, "sql-mode", "", "comma separated sql_mode; overrides sqllex.yaml")
	rootCmd.PersistentFlags().StringVar(&charsetName, "charset", "", "character set of the input; overrides sqllex.yaml")
	return rootCmd.Execute()
}

func setupLogging() error {
	switch logFormat {
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("unknown log format %q", logFormat)
	}
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return nil
}
