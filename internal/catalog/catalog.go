// Package catalog holds the static question banks for the three
// screening instruments: MMSE, MoCA, and ADL.
package catalog

import (
	"fmt"
	"time"
)

// Instrument identifies a screening scale.
type Instrument string

const (
	MMSE Instrument = "MMSE"
	MoCA Instrument = "MoCA"
	ADL  Instrument = "ADL"
)

// DisplayName returns the Chinese title shown in the UI.
func (i Instrument) DisplayName() string {
	switch i {
	case MMSE:
		return "简易精神状态检查 (MMSE)"
	case MoCA:
		return "蒙特利尔认知评估 (MoCA)"
	case ADL:
		return "日常生活能力量表 (ADL)"
	default:
		return string(i)
	}
}

// InputKind describes how the answer to a question is captured.
type InputKind string

const (
	InputText    InputKind = "text"    // typed answer
	InputChoice  InputKind = "choice"  // one of Options
	InputDrawing InputKind = "drawing" // photographed/scanned drawing
	InputAudio   InputKind = "audio"   // spoken answer (clip or transcript)
)

// ScoringStrategy selects how a submitted answer is scored.
type ScoringStrategy string

const (
	// StrategySerialStep scores one step of the 100-7 subtraction chain
	// deterministically, with credit for consistent follow-on errors.
	StrategySerialStep ScoringStrategy = "serial_step"
	// StrategySerialChain scores a transcript of all five subtractions.
	StrategySerialChain ScoringStrategy = "serial_chain"
	// StrategyChoice maps the chosen ordinal option to its value.
	StrategyChoice ScoringStrategy = "choice"
	// StrategyExternal delegates to the LLM grader.
	StrategyExternal ScoringStrategy = "external"
)

// Question is a single item of an instrument.
type Question struct {
	ID         string
	Instrument Instrument
	Category   string
	Text       string
	Subtext    string
	ImageRef   string // reference image shown to the subject, if any
	Kind       InputKind
	Strategy   ScoringStrategy
	MaxScore   int
	Options    []string // choice questions only
	AnswerKey  string   // expected answer, for the report

	// SerialExpected is the canonical value for serial_step questions.
	SerialExpected int

	// Rubric is the grading instruction sent to the external grader.
	Rubric string
}

// Questions returns the ordered question list for an instrument.
// Orientation items embed the current date, so the bank is built per
// call rather than held as a package variable.
func Questions(inst Instrument) []Question {
	switch inst {
	case MMSE:
		return mmseQuestions(time.Now())
	case MoCA:
		return mocaQuestions(time.Now())
	case ADL:
		return adlQuestions()
	default:
		return nil
	}
}

// Instruments lists all supported scales in menu order.
func Instruments() []Instrument {
	return []Instrument{MMSE, MoCA, ADL}
}

// MaxScore returns the instrument's score ceiling.
func MaxScore(inst Instrument) int {
	switch inst {
	case MMSE, MoCA:
		return 30
	case ADL:
		return 80
	default:
		return 0
	}
}

// ByID looks up a question within an instrument's bank.
func ByID(inst Instrument, id string) (Question, bool) {
	for _, q := range Questions(inst) {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Validate checks structural invariants of all banks: unique IDs,
// options present on choice questions, serial steps consecutive and in
// canonical order. Called from tests and at startup.
func Validate() error {
	for _, inst := range Instruments() {
		qs := Questions(inst)
		if len(qs) == 0 {
			return fmt.Errorf("%s: empty question bank", inst)
		}
		seen := make(map[string]bool, len(qs))
		prevSerial := -1
		serialSeen := 0
		for i, q := range qs {
			if q.ID == "" {
				return fmt.Errorf("%s: question %d has empty ID", inst, i)
			}
			if seen[q.ID] {
				return fmt.Errorf("%s: duplicate question ID %q", inst, q.ID)
			}
			seen[q.ID] = true
			if q.Instrument != inst {
				return fmt.Errorf("%s: question %q tagged %s", inst, q.ID, q.Instrument)
			}
			if q.Strategy == StrategyChoice && len(q.Options) == 0 {
				return fmt.Errorf("%s: choice question %q has no options", inst, q.ID)
			}
			if q.Strategy == StrategyExternal && q.Rubric == "" {
				return fmt.Errorf("%s: external question %q has no rubric", inst, q.ID)
			}
			if q.Strategy == StrategySerialStep {
				if prevSerial >= 0 && i != prevSerial+1 {
					return fmt.Errorf("%s: serial steps not consecutive at %q", inst, q.ID)
				}
				if q.SerialExpected != serialTargets[serialSeen] {
					return fmt.Errorf("%s: serial step %q expects %d, want %d",
						inst, q.ID, q.SerialExpected, serialTargets[serialSeen])
				}
				prevSerial = i
				serialSeen++
			}
		}
		if serialSeen != 0 && serialSeen != len(serialTargets) {
			return fmt.Errorf("%s: %d serial steps, want %d", inst, serialSeen, len(serialTargets))
		}
	}
	return nil
}

var serialTargets = [5]int{93, 86, 79, 72, 65}
