package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/ieltsprep/internal/writing"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback [file|-]",
	Short: "Grade an essay without opening the TUI",
	Long: `Send an essay to the configured model and print the band scores, per
criterion comments and the corrected essay. The essay is read from the named
file, or from stdin when the argument is "-" or omitted.

The attempt is saved to the history like one submitted in the TUI.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFeedback,
}

func init() {
	feedbackCmd.Flags().StringP("task", "t", "2", "Writing task: 1 or 2")
	feedbackCmd.Flags().Bool("json", false, "Print the raw feedback as JSON")
	feedbackCmd.Flags().Bool("prompt", false, "Print the task prompt and exit")
}

func runFeedback(cmd *cobra.Command, args []string) error {
	taskVal, _ := cmd.Flags().GetString("task")
	asJSON, _ := cmd.Flags().GetBool("json")
	promptOnly, _ := cmd.Flags().GetBool("prompt")

	task, err := writing.ParseTask(taskVal)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if promptOnly {
		fmt.Fprintf(out, "%s\n\n%s\n", task, task.Prompt())
		return nil
	}

	essay, err := readEssay(cmd, args)
	if err != nil {
		return err
	}
	// Checked here too so a short essay fails before any config or
	// database work.
	if writing.CountWords(essay) < writing.MinWords {
		return writing.ErrEssayTooShort
	}

	svc, err := openServices(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	fb, err := svc.writing.Evaluate(cmd.Context(), task, essay)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(fb)
	}
	printFeedback(out, task, fb)
	return nil
}

func readEssay(cmd *cobra.Command, args []string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", fmt.Errorf("open essay: %w", err)
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read essay: %w", err)
	}
	return string(b), nil
}

func printFeedback(w io.Writer, task writing.Task, fb *writing.Feedback) {
	sep := strings.Repeat("─", 60)

	fmt.Fprintf(w, "%s  Overall Band %s\n%s\n", task, fb.OverallBand, sep)
	for _, c := range fb.Criteria() {
		fmt.Fprintf(w, "%-32s %s\n", c.Title, c.Score)
		if c.Feedback != "" {
			fmt.Fprintf(w, "  %s\n", c.Feedback)
		}
	}
	if fb.CorrectedEssay != "" {
		fmt.Fprintf(w, "%s\nCorrected Essay\n%s\n%s\n", sep, sep, fb.CorrectedEssay)
	}
}
