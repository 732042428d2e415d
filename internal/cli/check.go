package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/sprite-ai/tghtml/internal/fixture"
)

var errChecksFailed = errors.New("fixture cases failed")

var checkCmd = &cobra.Command{
	Use:   "check <fixtures.yaml>...",
	Short: "Run conversion fixtures and report mismatches",
	Long: `Convert every case in the given YAML fixture files and compare the
result with the expected HTML. Useful in CI.

Exit codes:
  0 - every case passed
  1 - at least one case failed or a file could not be read`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringP("format", "f", "text", "output format: text, json")
}

type checkResult struct {
	File string `json:"file"`
	Name string `json:"name"`
	Pass bool   `json:"pass"`
	Want string `json:"want,omitempty"`
	Got  string `json:"got,omitempty"`
	Diff string `json:"diff,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q", format)
	}

	var results []checkResult
	for _, path := range args {
		cases, err := fixture.Load(path)
		if err != nil {
			return err
		}
		for _, r := range fixture.Run(cases) {
			cr := checkResult{File: path, Name: r.Case.Name, Pass: r.Pass}
			if !r.Pass {
				cr.Want, cr.Got, cr.Diff = r.Case.Want, r.Got, r.Diff
			}
			results = append(results, cr)
		}
	}

	out := cmd.OutOrStdout()
	var err error
	if format == "json" {
		err = outputCheckJSON(out, results)
	} else {
		outputCheckText(out, results)
	}
	if err != nil {
		return err
	}

	for _, r := range results {
		if !r.Pass {
			return errChecksFailed
		}
	}
	return nil
}

func outputCheckText(w io.Writer, results []checkResult) {
	pass := color.New(color.FgGreen, color.Bold)
	fail := color.New(color.FgRed, color.Bold)
	dim := color.New(color.Faint)

	failed := 0
	for _, r := range results {
		if r.Pass {
			pass.Fprint(w, "PASS")
			fmt.Fprintf(w, "  %s\n", r.Name)
			continue
		}
		failed++
		fail.Fprint(w, "FAIL")
		fmt.Fprintf(w, "  %s ", r.Name)
		dim.Fprintf(w, "(%s)\n", r.File)
		fmt.Fprintf(w, "      want: %s\n", r.Want)
		fmt.Fprintf(w, "      got:  %s\n", r.Got)
		fmt.Fprintf(w, "      diff: %s\n", r.Diff)
	}

	fmt.Fprintln(w)
	summary := fmt.Sprintf("%d passed, %d failed", len(results)-failed, failed)
	if failed > 0 {
		fail.Fprintln(w, summary)
	} else {
		pass.Fprintln(w, summary)
	}
}

func outputCheckJSON(w io.Writer, results []checkResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
