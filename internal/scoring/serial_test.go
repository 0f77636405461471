package scoring

import (
	"reflect"
	"testing"
)

func TestScoreSerialStep(t *testing.T) {
	tests := []struct {
		name         string
		answer       string
		expected     int
		previous     int
		havePrevious bool
		wantScore    int
		wantOK       bool
	}{
		{"exact match", "93", 93, 0, false, 1, true},
		{"chinese exact match", "九十三", 93, 0, false, 1, true},
		{"wrong first step", "92", 93, 0, false, 0, true},
		{"chain rule applies", "85", 86, 92, true, 1, true},
		{"chain rule exact still wins", "86", 86, 92, true, 1, true},
		{"wrong both ways", "80", 86, 92, true, 0, true},
		{"no previous no chain", "85", 86, 0, false, 0, true},
		{"unparseable", "不知道", 93, 0, false, 0, false},
		{"empty", "", 93, 0, false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreSerialStep(tt.answer, tt.expected, tt.previous, tt.havePrevious)
			if got.Score != tt.wantScore {
				t.Errorf("score = %d, want %d (feedback: %s)", got.Score, tt.wantScore, got.Feedback)
			}
			if got.OK != tt.wantOK {
				t.Errorf("ok = %v, want %v", got.OK, tt.wantOK)
			}
		})
	}
}

func TestScoreSerialChain(t *testing.T) {
	tests := []struct {
		name        string
		transcript  string
		wantScore   int
		wantCorrect int
	}{
		{"all correct", "93，86，79，72，65", 3, 5},
		{"four correct", "93，86，79，72，60", 3, 4},
		{"early slip chain recovers", "92，85，78，71，64", 3, 4},
		{"two correct", "93，86，70，60，50", 2, 2},
		{"one correct", "93，80，70，60,50", 1, 1},
		{"none correct", "90，80，70，60，50", 0, 0},
		{"chinese numerals", "九十三，八十六，七十九，七十二，六十五", 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreSerialChain(tt.transcript)
			if got.Score != tt.wantScore || got.Correct != tt.wantCorrect {
				t.Errorf("ScoreSerialChain(%q) = score %d correct %d, want score %d correct %d",
					tt.transcript, got.Score, got.Correct, tt.wantScore, tt.wantCorrect)
			}
		})
	}
}

func TestScoreSerialChainTooFewNumbers(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		wantCount  int
	}{
		{"empty", "", 0},
		{"garbage", "我算不出来", 0},
		{"three numbers", "93，86，79", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreSerialChain(tt.transcript)
			if got.Score != 0 {
				t.Errorf("score = %d, want 0", got.Score)
			}
			if len(got.Extracted) != tt.wantCount {
				t.Errorf("extracted %d numbers, want %d", len(got.Extracted), tt.wantCount)
			}
		})
	}
}

func TestScoreSerialChainKeepsFirstFive(t *testing.T) {
	got := ScoreSerialChain("93 86 79 72 65 58 51")
	if !reflect.DeepEqual(got.Extracted, []int{93, 86, 79, 72, 65}) {
		t.Errorf("extracted = %v, want first five", got.Extracted)
	}
	if got.Score != 3 {
		t.Errorf("score = %d, want 3", got.Score)
	}
}
