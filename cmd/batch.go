package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mcqgen/internal/ingestion"
	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/persist"
	"github.com/abhisek/mcqgen/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch <files...>",
	Short: "Generate MCQs for several text files and save them together",
	Long: "Loads each file as one input text (or, with --chunk, splits each file into chunks),\n" +
		"runs generation over all of them in order, saves the combined list and prints it.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chunk, _ := cmd.Flags().GetBool("chunk")

		texts := ingestion.LoadTextFiles(state.log, args)
		if chunk {
			texts = chunkTexts(texts)
		}

		out := outputPath(cmd)
		p, cleanup, err := newPipeline(cmd, pipeline.WithOutputPath(out))
		if err != nil {
			return err
		}
		defer cleanup()

		records, err := p.BatchProcess(cmd.Context(), texts, numQuestions(cmd, "num"))
		if err != nil {
			return err
		}

		if !persist.SaveResults(state.log, records, out) {
			return fmt.Errorf("failed to save results to %s", out)
		}

		for _, r := range records {
			fmt.Print(mcq.FormatForDisplay(r))
		}
		fmt.Printf("\nGenerated %d MCQs from %d texts, saved to %s\n", len(records), len(texts), out)
		return nil
	},
}

// chunkTexts splits every text with the configured chunker, keeping order.
func chunkTexts(texts []string) []string {
	cs := state.settings.Chunk
	chunker := ingestion.NewChunker(ingestion.ChunkerConfig{
		Method:     cs.Method,
		TargetSize: cs.TargetSize,
		MaxSize:    cs.MaxSize,
		Overlap:    cs.Overlap,
	})

	var chunks []string
	for _, t := range texts {
		chunks = append(chunks, chunker.Texts(t)...)
	}
	state.log.Info("chunked input",
		zap.Int("documents", len(texts)),
		zap.Int("chunks", len(chunks)),
		zap.String("method", cs.Method))
	return chunks
}

func init() {
	batchCmd.Flags().IntP("num", "n", 5, "Questions per text (default from config)")
	batchCmd.Flags().Bool("chunk", false, "Split each file into chunks before generating")
	batchCmd.Flags().StringP("output", "o", "", "Output file; .yaml/.yml writes YAML (default from config)")
}
