package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/ieltsprep/internal/store"
	"github.com/abhisek/ieltsprep/internal/writing"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past writing attempts and their bands",
	RunE: func(cmd *cobra.Command, args []string) error {
		taskVal, _ := cmd.Flags().GetString("task")
		limit, _ := cmd.Flags().GetInt("limit")

		var taskKey string
		if taskVal != "" {
			task, err := writing.ParseTask(taskVal)
			if err != nil {
				return err
			}
			taskKey = task.Key()
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		attempts, err := s.AttemptRepo().QueryAttempts(cmd.Context(), taskKey, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(attempts) == 0 {
			fmt.Fprintln(out, "No writing attempts yet.")
			return nil
		}

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tWhen\tTask\tWords\tBand\tResult")
		for _, a := range attempts {
			band, result := "-", "ok"
			if a.Success {
				band = writing.Band(a.OverallBand).String()
			} else {
				result = truncate(a.ErrorMessage, 40)
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n",
				a.ID,
				a.Timestamp.Local().Format("2006-01-02 15:04"),
				a.Task,
				a.WordCount,
				band,
				result,
			)
		}
		return tw.Flush()
	},
}

func init() {
	historyCmd.Flags().StringP("task", "t", "", "Only show one task (1 or 2)")
	historyCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
}
