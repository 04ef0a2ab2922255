package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/formfill/internal/adapter/driven/webfetch"
	"github.com/ericfisherdev/formfill/internal/application"
	"github.com/ericfisherdev/formfill/internal/config"
	"github.com/ericfisherdev/formfill/internal/logging"
)

var detectCmd = &cobra.Command{
	Use:   "detect <url>",
	Short: "Report whether a web page looks like a login form",
	Long: `Fetches the page and prints true when its body holds at least one
input-like control and one submit-like control. Non-HTML resources print false.`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, cfg.LogFormat, logging.ParseLevel(cfg.LogLevel))

	detector := application.NewFormDetector(webfetch.NewFetcher(
		webfetch.WithTimeout(cfg.FetchTimeout),
		webfetch.WithCacheEntries(cfg.FetchCacheEntries),
	), logger)

	found, err := detector.ContainsLoginForm(cmd.Context(), args[0])
	if err != nil && !errors.Is(err, application.ErrNotHTML) {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), found)
	return nil
}
