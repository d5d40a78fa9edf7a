package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/persist"
	"github.com/abhisek/mcqgen/internal/ui/quiz"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print the questions in a saved results file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := persist.LoadResults(args[0])
		if err != nil {
			return err
		}
		for _, r := range records {
			fmt.Print(mcq.FormatForDisplay(r))
		}
		fmt.Printf("\n%d MCQs\n", len(records))
		return nil
	},
}

var quizCmd = &cobra.Command{
	Use:   "quiz <file>",
	Short: "Answer the questions in a saved results file interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := persist.LoadResults(args[0])
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return errors.New("no questions in " + args[0])
		}

		res, err := quiz.Run(records)
		if err != nil {
			return err
		}
		fmt.Printf("Score: %d/%d (%d of %d answered)\n", res.Correct, res.Total, res.Answered, res.Total)
		return nil
	},
}
