// Package numparse normalizes typed and transcribed numeric answers.
//
// Answers arrive as free text from keyboard entry or speech transcripts
// and mix ASCII digits with Chinese numerals ("93", "九十三", "答案是86").
// All parsing here is total: malformed input yields (0, false), never a
// panic or an error.
package numparse

import (
	"strconv"
	"strings"
	"unicode"
)

// digitValues maps single Chinese numeral characters to their values.
var digitValues = map[rune]int{
	'零': 0, '〇': 0,
	'一': 1, '二': 2, '两': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

// ParseNumber extracts an integer from a single answer string.
//
// Resolution order: direct decimal parse of the cleaned string, Chinese
// numeral composition (including 十 tens forms like 九十三, 十五, 二十),
// then the first embedded ASCII digit run. Returns (0, false) when no
// number can be recovered.
func ParseNumber(s string) (int, bool) {
	cleaned := stripFiller(s)
	if cleaned == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(cleaned); err == nil {
		return n, true
	}

	if n, ok := parseChinese(cleaned); ok {
		return n, true
	}

	if n, ok := firstDigitRun(cleaned); ok {
		return n, true
	}

	return 0, false
}

// ExtractNumbers splits a free transcript on common Chinese and ASCII
// delimiters and parses each segment, keeping values in [0, 100] in
// the order spoken. Used for serial-subtraction transcripts.
func ExtractNumbers(s string) []int {
	segments := strings.FieldsFunc(s, isDelimiter)
	var nums []int
	for _, seg := range segments {
		n, ok := ParseNumber(seg)
		if !ok {
			continue
		}
		if n < 0 || n > 100 {
			continue
		}
		nums = append(nums, n)
	}
	return nums
}

func isDelimiter(r rune) bool {
	switch r {
	case '，', '。', '、', ',', '.', '；', ';':
		return true
	}
	return unicode.IsSpace(r)
}

// stripFiller removes whitespace and sentence punctuation so that
// "93。" and " 九十三 " parse like their bare forms.
func stripFiller(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		switch r {
		case '，', '。', '、', ',', '.':
			return -1
		}
		return r
	}, s)
}

// parseChinese handles single numerals and the 十 tens compositions:
// "X十Y" = 10X+Y, "十X" = 10+X, "X十" = 10X.
func parseChinese(s string) (int, bool) {
	runes := []rune(s)

	if len(runes) == 1 {
		if runes[0] == '十' {
			return 10, true
		}
		n, ok := digitValues[runes[0]]
		return n, ok
	}

	idx := -1
	for i, r := range runes {
		if r == '十' {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, false
	}

	tens := 1
	if idx > 0 {
		if idx != 1 {
			return 0, false
		}
		v, ok := digitValues[runes[0]]
		if !ok || v == 0 {
			return 0, false
		}
		tens = v
	}

	units := 0
	if idx < len(runes)-1 {
		if idx != len(runes)-2 {
			return 0, false
		}
		v, ok := digitValues[runes[len(runes)-1]]
		if !ok {
			return 0, false
		}
		units = v
	}

	return tens*10 + units, true
}

// firstDigitRun returns the first maximal run of ASCII digits in s.
func firstDigitRun(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, err := strconv.Atoi(s[start:i])
			return n, err == nil
		}
	}
	if start >= 0 {
		n, err := strconv.Atoi(s[start:])
		return n, err == nil
	}
	return 0, false
}
