package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gofrs/flock"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"plagcheck/internal/failure"
	"plagcheck/internal/textsim"
)

// Output formats accepted by Render.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Report is one finished comparison.
type Report struct {
	Source        string         `json:"source"`
	Candidate     string         `json:"candidate"`
	CorrelationID string         `json:"correlation_id,omitempty"`
	Result        textsim.Result `json:"result"`
}

// WriteFile replaces the contents of path with the source path, the candidate
// path, and the score to four decimals. The write holds an exclusive advisory
// lock on path so concurrent runs targeting the same file do not interleave.
func WriteFile(path string, r Report) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return failure.Wrap(failure.ErrOutput, "report", "open", path, err)
	}
	defer file.Close()

	lock := flock.New(path)
	if err := lock.Lock(); err != nil {
		return failure.Wrap(failure.ErrOutput, "report", "lock", path, err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	if err := file.Truncate(0); err != nil {
		return failure.Wrap(failure.ErrOutput, "report", "truncate", path, err)
	}
	if _, err := io.WriteString(file, FileContents(r)); err != nil {
		return failure.Wrap(failure.ErrOutput, "report", "write", path, err)
	}
	if err := file.Close(); err != nil {
		return failure.Wrap(failure.ErrOutput, "report", "close", path, err)
	}
	return nil
}

// FileContents returns the exact text WriteFile stores.
func FileContents(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "source: %s\n", r.Source)
	fmt.Fprintf(&b, "candidate: %s\n", r.Candidate)
	fmt.Fprintf(&b, "similarity: %.4f\n", r.Result.Score)
	return b.String()
}

// ParseFormat canonicalizes a presentation name. Blank selects FormatText.
func ParseFormat(format string) (string, error) {
	switch value := strings.ToLower(strings.TrimSpace(format)); value {
	case "":
		return FormatText, nil
	case FormatText, FormatTable, FormatJSON:
		return value, nil
	default:
		return "", failure.Wrap(failure.ErrValidation, "report", "format",
			fmt.Sprintf("unsupported format %q (want %s, %s, or %s)", format, FormatText, FormatTable, FormatJSON), nil)
	}
}

// Render writes r to w in the requested format.
func Render(w io.Writer, format string, r Report) error {
	format, err := ParseFormat(format)
	if err != nil {
		return err
	}
	switch format {
	case FormatTable:
		_, err = fmt.Fprintln(w, renderTable(r))
	case FormatJSON:
		err = WriteJSON(w, r)
	default:
		err = writeText(w, r)
	}
	return err
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeText(w io.Writer, r Report) error {
	_, err := fmt.Fprintf(w,
		"cosine similarity: %.4f\nedit similarity: %.4f\nsimilarity score: %.2f\n",
		r.Result.Cosine, r.Result.Edit, r.Result.Score)
	return err
}

func renderTable(r Report) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Value", "Weight"})
	tw.AppendRows([]table.Row{
		{"Cosine similarity", fmt.Sprintf("%.4f", r.Result.Cosine), fmt.Sprintf("%.2f", r.Result.Weights.Cosine)},
		{"Edit similarity", fmt.Sprintf("%.4f", r.Result.Edit), fmt.Sprintf("%.2f", r.Result.Weights.Edit)},
	})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"Similarity score", fmt.Sprintf("%.2f", r.Result.Score), ""})
	tw.AppendFooter(table.Row{"Tokens", fmt.Sprintf("%d / %d", r.Result.SourceTokens, r.Result.CandidateTokens),
		fmt.Sprintf("vocab %d", r.Result.VocabularySize)})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
