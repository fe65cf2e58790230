package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"plagcheck/internal/failure"
	"plagcheck/internal/textsim"
)

func sampleReport() Report {
	return Report{
		Source:    "orig.txt",
		Candidate: "copy.txt",
		Result: textsim.Result{
			Score:           0.123456,
			Cosine:          0.0987654,
			Edit:            0.18,
			Weights:         textsim.DefaultWeights(),
			SourceTokens:    12,
			CandidateTokens: 20,
			VocabularySize:  25,
		},
	}
}

func TestFileContents(t *testing.T) {
	got := FileContents(sampleReport())
	want := "source: orig.txt\ncandidate: copy.txt\nsimilarity: 0.1235\n"
	if got != want {
		t.Fatalf("FileContents() = %q, want %q", got, want)
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.txt")
	if err := os.WriteFile(path, []byte(strings.Repeat("stale line\n", 20)), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, sampleReport()); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != FileContents(sampleReport()) {
		t.Fatalf("unexpected file contents %q", got)
	}
	lines := strings.Split(strings.TrimSpace(string(got)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
}

func TestWriteFileCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	if err := WriteFile(path, sampleReport()); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "result.txt")
	if err := WriteFile(path, sampleReport()); !errors.Is(err, failure.ErrOutput) {
		t.Fatalf("expected output error, got %v", err)
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatText, sampleReport()); err != nil {
		t.Fatal(err)
	}
	want := "cosine similarity: 0.0988\nedit similarity: 0.1800\nsimilarity score: 0.12\n"
	if buf.String() != want {
		t.Fatalf("Render(text) = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := Render(&buf, "", sampleReport()); err != nil || buf.String() != want {
		t.Fatalf("empty format should default to text, got %q %v", buf.String(), err)
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatTable, sampleReport()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Cosine similarity", "0.0988", "Edit similarity", "0.1800", "0.12", "0.70", "0.30"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	r := sampleReport()
	r.CorrelationID = "abc"
	if err := Render(&buf, FormatJSON, r); err != nil {
		t.Fatal(err)
	}
	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Source != "orig.txt" || decoded.Result.Score != r.Result.Score || decoded.CorrelationID != "abc" {
		t.Fatalf("unexpected decoded report %+v", decoded)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", FormatText, false},
		{" TABLE ", FormatTable, false},
		{"json", FormatJSON, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if err := Render(&bytes.Buffer{}, "yaml", sampleReport()); !errors.Is(err, failure.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
