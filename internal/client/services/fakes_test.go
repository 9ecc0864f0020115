package services

import (
	"context"
	"io"
	"sync"

	"github.com/dmitrijs2005/useraccount/internal/client/client"
	"github.com/dmitrijs2005/useraccount/internal/client/models"
)

// ---- fake hasher ----

// step is one scripted stream event: a credential or a terminal error.
type step struct {
	cred *models.Credential
	err  error
}

type fakeHasher struct {
	mu sync.Mutex

	openErr error
	steps   []step

	// gate, when set, holds Recv until closed.
	gate chan struct{}

	calls     int
	lastIDs   []int32
	lastPW    []string
	deadlines []bool
	reqIDs    []string
}

func (f *fakeHasher) Hash(ctx context.Context, userID int32, password string) (client.HashStream, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.lastIDs = append(f.lastIDs, userID)
	f.lastPW = append(f.lastPW, password)
	_, hasDeadline := ctx.Deadline()
	f.deadlines = append(f.deadlines, hasDeadline)
	id, _ := client.RequestIDFromContext(ctx)
	f.reqIDs = append(f.reqIDs, id)

	if f.openErr != nil {
		return nil, f.openErr
	}
	return &fakeHashStream{steps: append([]step(nil), f.steps...), gate: f.gate}, nil
}

func (f *fakeHasher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeHashStream struct {
	steps []step
	gate  chan struct{}
}

func (s *fakeHashStream) Recv() (*models.Credential, error) {
	if s.gate != nil {
		<-s.gate
	}
	if len(s.steps) == 0 {
		return nil, io.EOF
	}
	st := s.steps[0]
	s.steps = s.steps[1:]
	if st.err != nil {
		return nil, st.err
	}
	c := *st.cred
	return &c, nil
}

// ---- fake validator ----

type fakeValidator struct {
	valid bool
	err   error

	lastPassword string
	lastHash     []byte
	lastSalt     []byte
	hadDeadline  bool

	lastRequestID string
}

func (f *fakeValidator) Validate(ctx context.Context, password string, hashedPassword, salt []byte) (bool, error) {
	f.lastPassword = password
	f.lastHash = hashedPassword
	f.lastSalt = salt
	_, f.hadDeadline = ctx.Deadline()
	f.lastRequestID, _ = client.RequestIDFromContext(ctx)
	return f.valid, f.err
}
