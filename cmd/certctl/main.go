package main

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var nlpURL string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "certctl",
	Short: "Read, classify and score certificate text offline",
	Long: `certctl runs the activity point pipeline on OCR text without a server.

Input is a text file, or "-" for stdin. The built-in rule catalog is used
unless --catalog names a JSON file of activity rules.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&nlpURL, "nlp", "", "entity extraction service base URL (default: local extraction only)")
}
