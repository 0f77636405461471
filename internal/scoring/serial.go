// Package scoring implements the deterministic scorers: single-step and
// full-chain serial subtraction, and ordinal choice mapping.
package scoring

import (
	"fmt"
	"strings"

	"github.com/hwei-lab/cogscreen/internal/numparse"
)

// SerialChainTargets are the canonical answers for five serial
// subtractions of 7 starting from 100.
var SerialChainTargets = [5]int{93, 86, 79, 72, 65}

// StepResult is the outcome of scoring one serial-subtraction step.
type StepResult struct {
	Score    int
	Parsed   int
	OK       bool // answer contained a recognizable number
	Feedback string
}

// ScoreSerialStep scores a single subtraction step.
//
// An answer earns the point when it equals the canonical expected value,
// or when it equals the previous step's answer minus 7: an early mistake
// is only penalized once as long as later subtractions stay consistent.
func ScoreSerialStep(answer string, expected, previous int, havePrevious bool) StepResult {
	n, ok := numparse.ParseNumber(answer)
	if !ok {
		return StepResult{
			Score:    0,
			OK:       false,
			Feedback: "无法从回答中识别出数字",
		}
	}

	if n == expected {
		return StepResult{Score: 1, Parsed: n, OK: true, Feedback: "回答正确"}
	}

	if havePrevious && n == previous-7 {
		return StepResult{
			Score:    1,
			Parsed:   n,
			OK:       true,
			Feedback: fmt.Sprintf("回答 %d 等于上一个答案减7，按连续计算规则计分", n),
		}
	}

	return StepResult{
		Score:    0,
		Parsed:   n,
		OK:       true,
		Feedback: fmt.Sprintf("回答 %d 不正确，正确答案是 %d", n, expected),
	}
}

// ChainResult is the outcome of scoring a full serial-subtraction
// transcript of five answers spoken in one breath.
type ChainResult struct {
	Score     int
	Extracted []int
	Correct   int
	Feedback  string
}

// ScoreSerialChain extracts up to five numbers from a transcript and
// scores them against SerialChainTargets, applying the same forgiving
// chain rule per position. Correct count maps to the 0-3 point band
// used by the instrument: 4-5 correct = 3, 2-3 = 2, 1 = 1, 0 = 0.
func ScoreSerialChain(transcript string) ChainResult {
	nums := numparse.ExtractNumbers(transcript)
	if len(nums) < 5 {
		return ChainResult{
			Score:     0,
			Extracted: nums,
			Feedback:  fmt.Sprintf("仅识别出 %d 个数字，需要连续说出5个答案", len(nums)),
		}
	}

	nums = nums[:5]
	correct := 0
	for i, n := range nums {
		if n == SerialChainTargets[i] || (i > 0 && n == nums[i-1]-7) {
			correct++
		}
	}

	var score int
	switch {
	case correct >= 4:
		score = 3
	case correct >= 2:
		score = 2
	case correct >= 1:
		score = 1
	}

	return ChainResult{
		Score:     score,
		Extracted: nums,
		Correct:   correct,
		Feedback: fmt.Sprintf("识别数字 %s，正确 %d/5，得 %d 分",
			joinInts(nums), correct, score),
	}
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, "、")
}
