package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ericfisherdev/formfill/internal/adapter/driven/memory"
	"github.com/ericfisherdev/formfill/internal/application"
	"github.com/ericfisherdev/formfill/internal/config"
	"github.com/ericfisherdev/formfill/internal/domain/model"
	"github.com/ericfisherdev/formfill/internal/logging"
)

var classifyPageURL string

var classifyCmd = &cobra.Command{
	Use:   "classify <tree.yaml|tree.json>",
	Short: "Classify a field tree file and print the suggestions it would get",
	Long: `Reads a field tree (a single root or a list of window roots) from a
YAML or JSON file, classifies every leaf and prints the suggestion entries in
delivery order. Saved logins are not consulted.`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&classifyPageURL, "url", "", "page URL the fields belong to")
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, cfg.LogFormat, logging.ParseLevel(cfg.LogLevel))

	profile, err := config.LoadProfile(cfg.ProfilePath)
	if err != nil {
		return err
	}

	windows, err := readFieldTree(args[0])
	if err != nil {
		return err
	}

	store := memory.NewCredentialStore()
	svc := application.NewAutofillService(
		application.NewFieldClassifier(logger),
		application.NewSuggestionBuilder(store, application.NewProfileProvider(profile), logger),
		store,
		logger,
	)

	set := svc.Suggest(cmd.Context(), classifyPageURL, windows...)
	return writeSuggestions(cmd.OutOrStdout(), set)
}

// writeSuggestions prints one row per entry, kinds in delivery order.
func writeSuggestions(w io.Writer, set model.SuggestionSet) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tKIND\tVALUE\tLABEL")
	for _, kind := range set.Kinds() {
		for _, e := range set[kind] {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Field, kind, e.Value, e.Label)
		}
	}
	return tw.Flush()
}

// readFieldTree decodes a field tree file. JSON is valid YAML, so one decoder
// serves both. The document may be a single root or a list of roots.
func readFieldTree(path string) ([]model.FieldNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read field tree %s: %w", path, err)
	}

	var roots []*model.Field
	if err := yaml.Unmarshal(data, &roots); err != nil {
		var single model.Field
		if err2 := yaml.Unmarshal(data, &single); err2 != nil {
			return nil, fmt.Errorf("parse field tree %s: %w", path, err2)
		}
		roots = []*model.Field{&single}
	}

	windows := make([]model.FieldNode, 0, len(roots))
	for _, r := range roots {
		if r != nil {
			windows = append(windows, r)
		}
	}
	return windows, nil
}
