package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"plagcheck/internal/document"
	"plagcheck/internal/report"
	"plagcheck/internal/textsim"
)

type inspection struct {
	Path       string      `json:"path"`
	Normalized string      `json:"normalized"`
	Runes      int         `json:"runes"`
	Tokens     []string    `json:"tokens"`
	Vocabulary []termCount `json:"vocabulary"`
}

type termCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// vocabularyOf lists the distinct tokens in order of first appearance.
func vocabularyOf(tokens []string) []termCount {
	freq := textsim.TermFrequency(tokens)
	terms := textsim.BuildVocabulary(tokens, nil).Terms()
	out := make([]termCount, 0, len(terms))
	for _, term := range terms {
		out = append(out, termCount{Term: term, Count: freq[term]})
	}
	return out
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the normalized text and tokens of one document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(ctx.flags.format)
			if err != nil {
				return err
			}
			tok, err := ctx.tokenizer()
			if err != nil {
				return err
			}
			raw, err := document.Read(args[0])
			if err != nil {
				return err
			}

			normalized := ctx.configValue().Profile().Normalize(raw)
			tokens := textsim.Segment(tok, normalized)
			view := inspection{
				Path:       args[0],
				Normalized: normalized,
				Runes:      utf8.RuneCountInString(normalized),
				Tokens:     tokens,
				Vocabulary: vocabularyOf(tokens),
			}

			out := cmd.OutOrStdout()
			if format == report.FormatJSON {
				return report.WriteJSON(out, view)
			}
			fmt.Fprintf(out, "normalized (%d runes): %s\n", view.Runes, view.Normalized)
			fmt.Fprintf(out, "tokens (%d, %d unique): %s\n", len(tokens), len(view.Vocabulary), strings.Join(tokens, " "))
			entries := make([]string, 0, len(view.Vocabulary))
			for _, entry := range view.Vocabulary {
				entries = append(entries, fmt.Sprintf("%s=%d", entry.Term, entry.Count))
			}
			fmt.Fprintf(out, "vocabulary: %s\n", strings.Join(entries, " "))
			return nil
		},
	}
}
