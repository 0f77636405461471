package numparse

import (
	"reflect"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{"plain digits", "93", 93, true},
		{"digits with spaces", "  93  ", 93, true},
		{"digits with chinese period", "86。", 86, true},
		{"digits with comma", "72，", 72, true},
		{"chinese tens units", "九十三", 93, true},
		{"chinese tens only", "二十", 20, true},
		{"chinese teens", "十五", 15, true},
		{"bare ten", "十", 10, true},
		{"single numeral", "七", 7, true},
		{"liang variant", "两", 2, true},
		{"zero", "零", 0, true},
		{"spaced chinese numerals", "九 十 三", 93, true},
		{"embedded digits", "答案是86", 86, true},
		{"trailing text", "93减7", 93, true},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"no number", "不知道", 0, false},
		{"malformed chinese", "十十", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumber(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseNumber(%q) = (%d, %v), want (%d, %v)",
					tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestExtractNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"comma separated", "93，86，79，72，65", []int{93, 86, 79, 72, 65}},
		{"space separated", "93 86 79 72 65", []int{93, 86, 79, 72, 65}},
		{"mixed delimiters", "93, 86。79、72\n65", []int{93, 86, 79, 72, 65}},
		{"chinese numerals", "九十三，八十六", []int{93, 86}},
		{"out of range dropped", "93，150，86", []int{93, 86}},
		{"garbage segments dropped", "93，嗯，86", []int{93, 86}},
		{"empty", "", nil},
		{"no numbers", "我不会算", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractNumbers(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractNumbers(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
