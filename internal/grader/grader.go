// Package grader scores answers that have no deterministic rule by
// delegating to an LLM provider. Callers treat any error as "grading
// unavailable" and must keep the assessment moving.
package grader

import "context"

// Request carries everything the grader needs for one answer.
type Request struct {
	QuestionID string
	Category   string
	Prompt     string // the question as presented to the subject
	Rubric     string // grading instructions for this question
	Answer     string // typed answer or speech transcript
	Image      []byte // photographed drawing, if any
	ImageMIME  string
	Audio      []byte // recorded spoken answer, if any
	AudioMIME  string
	MaxScore   int
}

// Result is a grading outcome.
type Result struct {
	Score     int
	Reasoning string
}

// Grader evaluates a single answer.
type Grader interface {
	Grade(ctx context.Context, req Request) (*Result, error)
}
