package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/useraccount/internal/client/models"
	"github.com/google/uuid"
)

// State of a hash submission: Submitted -> Completed | Failed.
type State int

const (
	StateSubmitted State = iota
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateSubmitted:
		return "submitted"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Submission tracks one hash request. It cannot cancel the request.
type Submission struct {
	ID     uuid.UUID
	UserID int32

	// user has its password cleared; the producer goroutine holds the plaintext.
	user models.User

	// pending is the last Ok value, owned by the consumer goroutine.
	pending *models.Credential

	done  chan struct{}
	mu    sync.Mutex
	state State
	err   error
}

func newSubmission(u models.User) *Submission {
	u.Password = ""
	return &Submission{
		ID:     uuid.New(),
		UserID: u.UserID,
		user:   u,
		done:   make(chan struct{}),
	}
}

// Done is closed once the submission has completed or failed.
func (s *Submission) Done() <-chan struct{} {
	return s.done
}

func (s *Submission) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the failure cause of a failed submission.
func (s *Submission) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Wait blocks until the submission finishes or ctx is done. It returns the
// failure cause, or ctx.Err() if ctx ended first; the request keeps running
// in that case.
func (s *Submission) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return s.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Submission) finish(state State, err error) {
	s.mu.Lock()
	s.state = state
	s.err = err
	s.mu.Unlock()
	close(s.done)
}
