package cmd

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/mcqgen/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent generation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		runs, err := s.RunRepo().ListRuns(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No generation runs recorded yet.")
			return nil
		}

		lipgloss.Println(runsTable(runs))
		return nil
	},
}

func runsTable(runs []store.RunRecord) string {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		status := checkMark(r.Success)
		if !r.Success && r.ErrorMessage != "" {
			status += " " + truncate(r.ErrorMessage, 40)
		}
		rows = append(rows, []string{
			truncate(r.ID, 8),
			r.Timestamp.Local().Format(timeLayout),
			r.Source,
			fmt.Sprintf("%d/%d", r.AcceptedTexts, r.Texts),
			strconv.Itoa(r.QuestionsPerText),
			strconv.Itoa(r.Records),
			truncate(r.Model, 24),
			status,
		})
	}
	return renderTable([]string{"ID", "Timestamp", "Source", "Texts", "N", "Records", "Model", "OK"}, rows)
}

func init() {
	runsCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
}
