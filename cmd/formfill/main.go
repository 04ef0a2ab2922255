// Command formfill runs the autofill suggestion service and its offline
// diagnostics.
package main

import (
	"log/slog"
	"os"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "formfill",
	Short: "Autofill suggestions and login form detection",
	Long: `formfill classifies form fields by their autofill hints, offers
profile and saved-login values for them, and detects login forms on web pages.

Run without a subcommand to start the HTTP service.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, detectCmd, classifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}
