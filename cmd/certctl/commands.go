package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"certpoints/internal/classify"
	"certpoints/internal/dedupe"
	"certpoints/internal/model"
	"certpoints/internal/points"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	levelHint   string
	catalogPath string
	fileName    string
	studentName string
)

//nolint:gochecknoglobals // Cobra boilerplate
var extractCmd = &cobra.Command{
	Use:   "extract <text-file|->",
	Short: "Print the entities found in certificate text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		rec, err := enrich(ctx, args[0], model.Level(strings.ToUpper(levelHint)))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), rec)
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var classifyCmd = &cobra.Command{
	Use:   "classify <text-file|->",
	Short: "Print the activity keyword and the classifier rule that chose it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		rec, err := enrich(ctx, args[0], "")
		if err != nil {
			return err
		}
		src := classify.FromRecord(rec)
		src.FileName = fileName
		keyword, rule := classify.Explain(src)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t(%s)\n", keyword, rule)
		return nil
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var scoreCmd = &cobra.Command{
	Use:   "score <text-file|->",
	Short: "Score certificate text against the rule catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		level := model.Level(strings.ToUpper(levelHint))
		if level != "" && !level.Valid() {
			return errors.Errorf("level must be one of I, II, III, IV, V; got %q", levelHint)
		}
		source, err := loadCatalog(catalogPath)
		if err != nil {
			return err
		}
		rec, err := enrich(ctx, args[0], level)
		if err != nil {
			return err
		}

		result := points.NewEngine(source, points.DefaultPolicy(), nil).Score(ctx, rec)
		if studentName != "" && !dedupe.VerifyIdentity(studentName, rec) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %q is not named on the certificate\n", studentName)
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the classifier rules in priority order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for i, name := range classify.RuleNames() {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", i+1, name)
		}
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(extractCmd, classifyCmd, scoreCmd, rulesCmd)

	extractCmd.Flags().StringVar(&levelHint, "level", "", "activity level hint (I-V)")
	classifyCmd.Flags().StringVar(&fileName, "file-name", "", "original upload file name, used as a classification hint")
	scoreCmd.Flags().StringVar(&levelHint, "level", "", "activity level hint (I-V)")
	scoreCmd.Flags().StringVar(&catalogPath, "catalog", "", "JSON file of activity rules (default: built-in catalog)")
	scoreCmd.Flags().StringVar(&studentName, "student", "", "warn when this name is not on the certificate")
}
