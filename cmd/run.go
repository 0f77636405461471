package cmd

import (
	"fmt"
	"os"

	"github.com/hwei-lab/cogscreen/internal/app"
	"github.com/hwei-lab/cogscreen/internal/grader"
	"github.com/hwei-lab/cogscreen/internal/llm"
	"github.com/hwei-lab/cogscreen/internal/report"
	"github.com/hwei-lab/cogscreen/internal/session"
	"github.com/hwei-lab/cogscreen/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	var g grader.Grader
	var modelID string
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Subjective answers will be recorded with a score of 0.")
	} else {
		g = grader.NewLLMGrader(provider)
		modelID = provider.ModelID()
	}

	records := st.RecordRepo()
	return app.Run(app.Options{
		Machine:  session.New(g, eventRepo),
		Records:  records,
		Exporter: report.NewStoreExporter(records),
		LLMModel: modelID,
	})
}
