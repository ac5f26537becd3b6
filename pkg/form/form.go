// Package form models the signup forms as a browser would drive them:
// local validation first, then one request, with the form moving through
// idle, submitting and submitted states.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// State of a form
type State int

const (
	Idle State = iota
	Submitting
	Submitted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	// ErrBusy is returned when a submission is already in flight.
	ErrBusy = errors.New("submission already in progress")
	// ErrAlreadySubmitted is returned until Reset is called.
	ErrAlreadySubmitted = errors.New("form already submitted")
	// ErrSubmitFailed wraps any failure reported by the submitter.
	ErrSubmitFailed = errors.New("something went wrong, try again")
)

// Form drives one signup form. T is the payload schema; its validate tags
// are checked before anything is sent.
type Form[T any] struct {
	mu        sync.Mutex
	state     State
	path      string
	submitter Submitter
}

// New creates a form that submits T to path
func New[T any](path string, submitter Submitter) *Form[T] {
	return &Form[T]{path: path, submitter: submitter}
}

// State returns the current state
func (f *Form[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit validates data and sends it. Invalid data returns a
// *ValidationError and sends nothing; the form stays idle. On failure the
// form returns to idle so the user can try again.
func (f *Form[T]) Submit(ctx context.Context, data T) error {
	f.mu.Lock()
	switch f.state {
	case Submitting:
		f.mu.Unlock()
		return ErrBusy
	case Submitted:
		f.mu.Unlock()
		return ErrAlreadySubmitted
	}

	if err := Validate(data); err != nil {
		f.mu.Unlock()
		return err
	}

	f.state = Submitting
	f.mu.Unlock()

	err := f.submitter.Submit(ctx, f.path, data)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = Idle
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	f.state = Submitted
	return nil
}

// Reset makes a submitted form accept a new submission ("add another").
// It has no effect while a submission is in flight.
func (f *Form[T]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == Submitted {
		f.state = Idle
	}
}
