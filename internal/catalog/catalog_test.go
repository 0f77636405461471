package catalog

import (
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestBankSizes(t *testing.T) {
	tests := []struct {
		inst Instrument
		want int
	}{
		{MMSE, 24},
		{MoCA, 23},
		{ADL, 20},
	}
	for _, tt := range tests {
		if got := len(Questions(tt.inst)); got != tt.want {
			t.Errorf("%s bank has %d questions, want %d", tt.inst, got, tt.want)
		}
	}
}

func TestMaxScoreTotals(t *testing.T) {
	tests := []struct {
		inst Instrument
		want int
	}{
		{MMSE, 30},
		{MoCA, 30},
		{ADL, 80},
	}
	for _, tt := range tests {
		total := 0
		for _, q := range Questions(tt.inst) {
			total += q.MaxScore
		}
		if total != tt.want {
			t.Errorf("%s max scores sum to %d, want %d", tt.inst, total, tt.want)
		}
		if MaxScore(tt.inst) != tt.want {
			t.Errorf("MaxScore(%s) = %d, want %d", tt.inst, MaxScore(tt.inst), tt.want)
		}
	}
}

func TestSerialStepsInOrder(t *testing.T) {
	want := []int{93, 86, 79, 72, 65}
	var got []int
	for _, q := range Questions(MMSE) {
		if q.Strategy == StrategySerialStep {
			got = append(got, q.SerialExpected)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("found %d serial steps, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("serial step %d expects %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMocaHasSerialChain(t *testing.T) {
	q, ok := ByID(MoCA, "moca_attention_serial7")
	if !ok {
		t.Fatal("moca_attention_serial7 not found")
	}
	if q.Strategy != StrategySerialChain {
		t.Errorf("strategy = %s, want %s", q.Strategy, StrategySerialChain)
	}
	if q.MaxScore != 3 {
		t.Errorf("max score = %d, want 3", q.MaxScore)
	}
}

func TestADLAllChoice(t *testing.T) {
	for _, q := range Questions(ADL) {
		if q.Strategy != StrategyChoice {
			t.Errorf("%s strategy = %s, want %s", q.ID, q.Strategy, StrategyChoice)
		}
		if len(q.Options) != 4 {
			t.Errorf("%s has %d options, want 4", q.ID, len(q.Options))
		}
	}
}

func TestSeasonFor(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.April, "春季/春天/spring"},
		{time.July, "夏季/夏天/summer"},
		{time.October, "秋季/秋天/autumn"},
		{time.January, "冬季/冬天/winter"},
		{time.December, "冬季/冬天/winter"},
	}
	for _, tt := range tests {
		if got := seasonFor(tt.month); got != tt.want {
			t.Errorf("seasonFor(%s) = %q, want %q", tt.month, got, tt.want)
		}
	}
}

func TestOrientationRubricsEmbedDate(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	for _, q := range mmseQuestions(now) {
		if q.ID == "mmse_time_year" {
			if q.AnswerKey != "2026年" {
				t.Errorf("answer key = %q, want 2026年", q.AnswerKey)
			}
		}
	}
	for _, q := range mocaQuestions(now) {
		if q.ID == "moca_orientation_date" {
			if q.AnswerKey != "15号" {
				t.Errorf("answer key = %q, want 15号", q.AnswerKey)
			}
		}
	}
}
