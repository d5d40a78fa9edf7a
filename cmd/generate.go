package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mcqgen/internal/ingestion"
	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/persist"
	"github.com/abhisek/mcqgen/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate MCQs from a single text",
	Example: `  mcqgen generate --text "Photosynthesis converts light into chemical energy..." -n 3
  mcqgen generate --file chapter1.txt --difficulty hard --output out/ch1.yaml --print`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, _ := cmd.Flags().GetString("text")
		file, _ := cmd.Flags().GetString("file")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		printRecords, _ := cmd.Flags().GetBool("print")

		if text == "" && file == "" {
			return errors.New("one of --text or --file is required")
		}
		if file != "" {
			text = ingestion.LoadTextFile(state.log, file)
		}

		out := outputPath(cmd)
		p, cleanup, err := newPipeline(cmd, pipeline.WithOutputPath(out))
		if err != nil {
			return err
		}
		defer cleanup()

		records, err := p.Generate(cmd.Context(), text, numQuestions(cmd, "num"), difficulty)
		if errors.Is(err, pipeline.ErrInvalidInput) {
			return fmt.Errorf("input text must be at least %d characters after trimming", state.settings.MinLength)
		}
		if err != nil {
			return err
		}

		if !persist.SaveResults(state.log, records, out) {
			return fmt.Errorf("failed to save results to %s", out)
		}

		if printRecords {
			for _, r := range records {
				fmt.Print(mcq.FormatForDisplay(r))
			}
		}
		fmt.Printf("Generated %d MCQs, saved to %s\n", len(records), out)
		return nil
	},
}

func init() {
	generateCmd.Flags().String("text", "", "Source text")
	generateCmd.Flags().String("file", "", "Read source text from a file")
	generateCmd.Flags().IntP("num", "n", 5, "Number of questions (default from config)")
	generateCmd.Flags().String("difficulty", "", "Difficulty label (default from config)")
	generateCmd.Flags().StringP("output", "o", "", "Output file; .yaml/.yml writes YAML (default from config)")
	generateCmd.Flags().Bool("print", false, "Print the generated questions")
	generateCmd.MarkFlagsMutuallyExclusive("text", "file")
}
