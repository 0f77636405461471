package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/hwei-lab/cogscreen/internal/store"
	"github.com/spf13/cobra"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Inspect saved assessment records",
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent assessment records",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		records, err := s.RecordRepo().ListAssessments(ctx, limit)
		if err != nil {
			return fmt.Errorf("list assessments: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No assessment records found.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-6s  %-12s  %-7s  %s\n",
			"Session", "Completed", "Scale", "Patient", "Score", "Result")
		fmt.Println(strings.Repeat("─", 110))

		for _, r := range records {
			fmt.Printf("%-36s  %-19s  %-6s  %-12s  %2d/%-4d  %s\n",
				r.SessionID,
				r.CompletedAt.Local().Format("2006-01-02 15:04:05"),
				r.Instrument,
				r.PatientName,
				r.FinalScore, r.MaxScore,
				r.Interpretation,
			)
		}
		return nil
	},
}

var recordsViewCmd = &cobra.Command{
	Use:   "view <session-id>",
	Short: "View the full stored record for one assessment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		r, err := s.RecordRepo().GetAssessment(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get assessment: %w", err)
		}
		if r == nil {
			return fmt.Errorf("no record for session %q", args[0])
		}

		fmt.Printf("Session:    %s\n", r.SessionID)
		fmt.Printf("Scale:      %s\n", r.Instrument)
		fmt.Printf("Patient:    %s (%d岁", r.PatientName, r.PatientAge)
		if r.PatientGender != "" {
			fmt.Printf(", %s", r.PatientGender)
		}
		fmt.Println(")")
		if r.PatientID != "" {
			fmt.Printf("Patient ID: %s\n", r.PatientID)
		}
		if r.Instrument == "MoCA" {
			fmt.Printf("Education:  %d years\n", r.EducationYears)
		}
		fmt.Printf("Started:    %s\n", r.StartedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Completed:  %s\n", r.CompletedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Score:      %d/%d", r.FinalScore, r.MaxScore)
		if r.EducationAdjusted {
			fmt.Printf(" (raw %d, education-adjusted)", r.RawScore)
		}
		fmt.Println()
		if r.Instrument == "ADL" {
			fmt.Printf("Impaired:   %d items\n", r.ImpairedItems)
		}
		fmt.Printf("Result:     %s\n", r.Interpretation)

		sep := strings.Repeat("─", 60)
		if r.Answers != "" {
			fmt.Println()
			fmt.Println(sep)
			fmt.Println("ANSWERS")
			fmt.Println(sep)
			fmt.Println(r.Answers)
		}
		if r.Scores != "" {
			fmt.Println(sep)
			fmt.Println("SCORES")
			fmt.Println(sep)
			fmt.Println(r.Scores)
		}

		// Per-question grade trail, ordered as administered.
		grades, err := s.EventRepo().GradesForSession(ctx, r.SessionID)
		if err != nil {
			return fmt.Errorf("load grade events: %w", err)
		}
		if len(grades) > 0 {
			fmt.Println(sep)
			fmt.Println("GRADE EVENTS")
			fmt.Println(sep)
			for _, g := range grades {
				fmt.Printf("%-24s  %d/%d  [%s]\n", g.QuestionID, g.Score, g.MaxScore, g.Source)
				if g.Feedback != "" {
					fmt.Printf("    %s\n", g.Feedback)
				}
			}
		}

		return nil
	},
}

func init() {
	recordsListCmd.Flags().IntP("limit", "n", 20, "Number of records to show")

	recordsCmd.AddCommand(recordsListCmd)
	recordsCmd.AddCommand(recordsViewCmd)
}
