package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mcqgen/internal/persist"
	"github.com/abhisek/mcqgen/internal/store"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		if state.closeLog != nil {
			_ = state.closeLog()
			state.closeLog = nil
		}
	})
	return rootCmd.ExecuteContext(context.Background())
}

func TestGenerateThenRuns(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out", "mcqs.json")
	db := filepath.Join(dir, "mcqgen.db")
	text := "a sufficiently long valid text " + strings.Repeat("x", 60)

	err := execute(t,
		"--config", filepath.Join(dir, "missing.json"),
		"--log-dir", filepath.Join(dir, "logs"),
		"--db", db,
		"generate", "--text", text, "-n", "2", "--difficulty", "hard", "--output", out,
	)
	require.NoError(t, err)

	records, err := persist.LoadResults(out)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "hard", records[0].Difficulty)
	assert.Equal(t, records[0].Options[0], records[0].CorrectAnswer)

	s, err := store.Open(db)
	require.NoError(t, err)
	defer s.Close()

	runs, err := s.RunRepo().ListRuns(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.True(t, runs[0].Success)
	assert.Equal(t, 2, runs[0].Records)
	assert.Equal(t, out, runs[0].OutputPath)
	assert.Equal(t, "placeholder", runs[0].Model)

	logs, err := filepath.Glob(filepath.Join(dir, "logs", "mcqgen_*.log"))
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestGenerate_BadConfigValueFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(cfg, []byte(`{"num_questions": "five", "difficulty": "easy"}`), 0o644))
	out := filepath.Join(dir, "mcqs.json")
	text := "a sufficiently long valid text " + strings.Repeat("y", 60)

	err := execute(t,
		"--config", cfg,
		"--log-dir", filepath.Join(dir, "logs"),
		"--db", filepath.Join(dir, "mcqgen.db"),
		"generate", "--text", text, "-n", "1", "--difficulty", "easy", "--output", out,
	)
	require.NoError(t, err)
	assert.Equal(t, 5, state.settings.NumQuestions)
	assert.Equal(t, "easy", state.settings.Difficulty)

	records, err := persist.LoadResults(out)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestGenerate_MockProviderFromEnv(t *testing.T) {
	t.Setenv("MCQGEN_LLM_PROVIDER", "mock")
	dir := t.TempDir()
	out := filepath.Join(dir, "mcqs.json")
	db := filepath.Join(dir, "mcqgen.db")
	text := "Mitochondria produce most of the chemical energy needed by the cell through respiration."

	err := execute(t,
		"--config", filepath.Join(dir, "missing.json"),
		"--log-dir", filepath.Join(dir, "logs"),
		"--db", db,
		"--generator", "llm",
		"generate", "--text", text, "-n", "2", "--output", out,
	)
	_ = rootCmd.PersistentFlags().Set("generator", "")
	require.NoError(t, err)

	records, err := persist.LoadResults(out)
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Contains(t, r.Options, r.CorrectAnswer)
		assert.Contains(t, text, r.CorrectAnswer)
	}

	s, err := store.Open(db)
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.RunRepo().ListRuns(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "mock", runs[0].Model)
}

func TestBootstrap_RejectsUnknownGenerator(t *testing.T) {
	dir := t.TempDir()
	err := execute(t,
		"--config", filepath.Join(dir, "missing.json"),
		"--log-dir", filepath.Join(dir, "logs"),
		"--generator", "oracle",
		"runs", "--db", filepath.Join(dir, "x.db"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown generator")
	_ = rootCmd.PersistentFlags().Set("generator", "")
}

func TestChunkTexts(t *testing.T) {
	state.settings.Chunk.Method = "fixed"
	state.settings.Chunk.TargetSize = 3
	state.settings.Chunk.MaxSize = 6
	state.settings.Chunk.Overlap = 0

	chunks := chunkTexts([]string{"one two three four five six", "seven"})
	assert.Equal(t, []string{"one two three", "four five six", "seven"}, chunks)
}

func TestFormatLLMEvent(t *testing.T) {
	out := formatLLMEvent(&store.LLMEventRecord{
		ID: 7,
		LLMRequestEventData: store.LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-haiku-4-5",
			Purpose:      "question-gen",
			InputTokens:  1000,
			OutputTokens: 200,
			Success:      true,
			RequestBody:  `{"messages":[]}`,
		},
	})

	assert.Contains(t, out, "ID:        7")
	assert.Contains(t, out, "1000 in / 200 out")
	assert.Contains(t, out, "Cost:")
	assert.Contains(t, out, `{"messages":[]}`)
	assert.Contains(t, out, "(not captured)")
}

func TestCostTable_PartialWhenModelUnpriced(t *testing.T) {
	out := costTable([]store.LLMModelUsage{
		{Model: "claude-haiku-4-5", Calls: 1, InputTokens: 1000, OutputTokens: 100},
		{Model: "llama3.1:8b", Calls: 2, InputTokens: 500, OutputTokens: 50},
	})
	assert.Contains(t, out, "TOTAL (partial)")
	assert.Contains(t, out, "Pricing unavailable for: llama3.1:8b")
}

func TestUsageTable_Totals(t *testing.T) {
	out := usageTable([]store.LLMPurposeUsage{
		{Purpose: "question-gen", Calls: 3, InputTokens: 10, OutputTokens: 5},
	})
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "15")
}

func TestTruncate_MultiByte(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"héllo wörld", 4, "héll"},
		{"naïve-model", 3, "naï"},
		{"日本語テキスト", 4, "日本"},
	}

	for _, tc := range cases {
		got := truncate(tc.in, tc.max)
		assert.Equal(t, tc.want, got, tc.in)
		assert.True(t, utf8.ValidString(got), tc.in)
	}
}
