package session

import "errors"

var (
	// ErrSessionActive is returned by Start while another assessment is
	// still in progress.
	ErrSessionActive = errors.New("an assessment is already in progress")

	// ErrNotInProgress is returned by Current and Submit outside an
	// active assessment.
	ErrNotInProgress = errors.New("no assessment in progress")

	// ErrGradeInFlight is returned by Submit while the previous answer
	// is still being graded.
	ErrGradeInFlight = errors.New("previous answer is still being graded")
)
