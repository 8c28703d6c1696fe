package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hsmyc/hform-validator/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "hform",
	Short: "hform validates structured data against declarative schemas",
	Long: `hform checks JSON inputs against schemas authored as YAML or JSON
documents and reports a pass/fail verdict per field, recursing into
nested objects.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Diagnostic log level (debug, info, warn, error)")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelWarn
	}
	return logging.New(l)
}
