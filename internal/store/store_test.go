package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestGradeEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []GradeEventData{
		{SessionID: "sess-1", Instrument: "MMSE", QuestionID: "mmse_time_year", Category: "时间定向", Answer: "2025年", Score: 1, MaxScore: 1, Source: "external"},
		{SessionID: "sess-1", Instrument: "MMSE", QuestionID: "mmse_serial7_1", Category: "计算", Answer: "93", Score: 1, MaxScore: 1, Source: "serial_step", LatencyMs: 3},
		{SessionID: "sess-2", Instrument: "ADL", QuestionID: "adl_06_eating", Category: "躯体生活自理", Answer: "1", Score: 1, MaxScore: 4, Source: "choice"},
	}
	for i, e := range events {
		if err := repo.AppendGrade(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.GradesForSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("grades for session: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].QuestionID != "mmse_time_year" || got[1].QuestionID != "mmse_serial7_1" {
		t.Errorf("unexpected order: %s, %s", got[0].QuestionID, got[1].QuestionID)
	}
	if got[0].Sequence >= got[1].Sequence {
		t.Errorf("sequences not increasing: %d, %d", got[0].Sequence, got[1].Sequence)
	}
	if got[1].LatencyMs != 3 {
		t.Errorf("latency = %d, want 3", got[1].LatencyMs)
	}
}

func TestLLMEventQueryAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-sonnet-4-5",
			Purpose:      "grading",
			InputTokens:  100 + i,
			OutputTokens: 20,
			Success:      true,
			RequestBody:  "[user]\n请评分",
			ResponseBody: `{"score":1}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", events[0].Sequence, events[1].Sequence)
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.ResponseBody != `{"score":1}` {
		t.Errorf("unexpected event: %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "grading", InputTokens: 100, OutputTokens: 10, LatencyMs: 200, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "grading", InputTokens: 300, OutputTokens: 30, LatencyMs: 400, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "connect-test", InputTokens: 5, OutputTokens: 1, LatencyMs: 100, Success: true},
	}
	for i, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purposes, want 2", len(byPurpose))
	}
	// Sorted by purpose name: connect-test, grading.
	grading := byPurpose[1]
	if grading.Purpose != "grading" {
		t.Fatalf("unexpected purpose order: %+v", byPurpose)
	}
	if grading.Calls != 2 || grading.InputTokens != 400 || grading.OutputTokens != 40 {
		t.Errorf("grading usage = %+v", grading)
	}
	if grading.AvgLatencyMs != 300 {
		t.Errorf("avg latency = %d, want 300", grading.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Calls != 3 {
		t.Errorf("model usage = %+v", byModel)
	}
}

func TestAssessmentRecordRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	base := AssessmentRecordData{
		SessionID:      "sess-a",
		Instrument:     "MoCA",
		PatientName:    "李明",
		PatientAge:     68,
		EducationYears: 6,
		RawScore:       24,
		FinalScore:     25,
		MaxScore:       30,
		EducationAdjusted: true,
		Interpretation:    "可能存在认知功能障碍",
		StartedAt:         now.Add(-10 * time.Minute),
		CompletedAt:       now,
		Scores:            `{"moca_naming_lion":1}`,
	}
	if err := repo.SaveAssessment(ctx, base); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := base
	second.SessionID = "sess-b"
	second.CompletedAt = now.Add(time.Minute)
	if err := repo.SaveAssessment(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	records, err := repo.ListAssessments(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Newest completion first.
	if records[0].SessionID != "sess-b" {
		t.Errorf("first record = %s, want sess-b", records[0].SessionID)
	}

	rec, err := repo.GetAssessment(ctx, "sess-a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected record")
	}
	if !rec.EducationAdjusted || rec.FinalScore != 25 {
		t.Errorf("record = %+v", rec.AssessmentRecordData)
	}

	missing, err := repo.GetAssessment(ctx, "nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing record")
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"grade_events", "llm_request_events", "assessment_records"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
