package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"plagcheck/internal/document"
	"plagcheck/internal/failure"
	"plagcheck/internal/logging"
	"plagcheck/internal/report"
	"plagcheck/internal/textsim"
)

const usageLine = "usage: plagcheck [flags] <source_file> <candidate_file> <output_file>"

var errUsage = errors.New(usageLine)

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "plagcheck [flags] <source_file> <candidate_file> <output_file>",
		Short:         "Score how closely a candidate document copies a source document",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return errUsage
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, ctx, args[0], args[1], args[2])
		},
	}

	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	persistent.StringVar(&flags.segmenter, "segmenter", "", "Tokenizer: dictionary, runes, or fields")
	persistent.StringVar(&flags.dictionary, "dict", "", "Lexicon file for the dictionary segmenter")
	persistent.StringVar(&flags.format, "format", report.FormatText, "Console output: text, table, or json")

	rootCmd.Flags().Float64Var(&flags.cosineWeight, "cosine-weight", textsim.DefaultCosineWeight, "Weight of the cosine similarity")
	rootCmd.Flags().Float64Var(&flags.editWeight, "edit-weight", textsim.DefaultEditWeight, "Weight of the edit similarity")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newInspectCommand(ctx))

	return rootCmd
}

func runCompare(cmd *cobra.Command, ctx *commandContext, sourcePath, candidatePath, outputPath string) error {
	format, err := report.ParseFormat(ctx.flags.format)
	if err != nil {
		return err
	}

	runCtx := logging.WithCorrelationID(cmd.Context(), "")
	logger, err := ctx.logger()
	if err != nil {
		return err
	}
	logger = logging.NewComponentLogger(logging.WithContext(runCtx, logger), "compare")

	comparer, err := ctx.comparer(logger)
	if err != nil {
		return err
	}

	source, err := document.Read(sourcePath)
	if err != nil {
		return err
	}
	candidate, err := document.Read(candidatePath)
	if err != nil {
		return err
	}

	started := time.Now()
	result, err := comparer.Compare(source, candidate)
	if err != nil {
		logger.Warn("comparison rejected",
			slog.String(logging.FieldEventType, "compare_failed"),
			slog.String("error_kind", failure.Kind(err)),
			logging.Error(err),
		)
		return err
	}

	rep := report.Report{
		Source:        sourcePath,
		Candidate:     candidatePath,
		CorrelationID: correlationID(runCtx),
		Result:        result,
	}
	if err := report.Render(cmd.OutOrStdout(), format, rep); err != nil {
		return err
	}
	if err := report.WriteFile(outputPath, rep); err != nil {
		logging.ErrorWithContext(logger, "result file not written", "output_failed",
			slog.String("output", outputPath),
			logging.Error(err),
		)
		return err
	}

	logger.Info("comparison complete",
		slog.String(logging.FieldEventType, "compare_complete"),
		slog.String("output", outputPath),
		slog.Float64("score", result.Score),
		slog.Duration("elapsed", time.Since(started)),
	)
	return nil
}

func correlationID(ctx context.Context) string {
	id, _ := logging.CorrelationID(ctx)
	return id
}
