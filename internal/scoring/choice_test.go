package scoring

import "testing"

func TestScoreChoice(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   int
	}{
		{"option one", "1. 自己可以做", 1},
		{"option two", "2. 有些困难", 2},
		{"option three", "3. 需要帮助", 3},
		{"option four", "4. 根本无法做", 4},
		{"bare digit", "2", 2},
		{"leading spaces", "  3. 需要帮助", 3},
		{"empty falls open", "", 1},
		{"no digit falls open", "需要帮助", 1},
		{"zero out of range", "0. 无", 1},
		{"five out of range", "5. 其他", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreChoice(tt.answer); got != tt.want {
				t.Errorf("ScoreChoice(%q) = %d, want %d", tt.answer, got, tt.want)
			}
		})
	}
}
