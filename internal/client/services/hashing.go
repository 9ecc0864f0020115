package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/useraccount/internal/client/client"
	"github.com/dmitrijs2005/useraccount/internal/client/models"
	"github.com/dmitrijs2005/useraccount/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/useraccount/internal/logging"
	"github.com/dmitrijs2005/useraccount/internal/metrics"
	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/status"
)

const signalBuffer = 64

// PasswordHasher opens a remote hash request.
type PasswordHasher interface {
	Hash(ctx context.Context, userID int32, password string) (client.HashStream, error)
}

// HashingService submits passwords for remote hashing and stores the
// finalized account once the remote answers.
//
// Each submission runs its RPC on its own goroutine and turns the stream into
// Signals. A single consumer goroutine receives all Signals and is the only
// writer to the account store on behalf of this service. An account is
// written on Done using the response received before it; a request that ends
// with Err leaves the store untouched.
//
// Concurrent submissions for the same user id are not ordered: the store ends
// up with the account of whichever request completes last.
type HashingService struct {
	client   PasswordHasher
	accounts accounts.Repository
	logger   logging.Logger
	metrics  *metrics.Collector
	validate *validator.Validate
	timeout  time.Duration

	signals      chan Signal
	consumerDone chan struct{}

	mu       sync.Mutex
	closing  bool
	inflight sync.WaitGroup
}

// NewHashingService starts the consumer goroutine; call Shutdown to stop it.
// A timeout of 0 leaves hash calls without a deadline.
func NewHashingService(c PasswordHasher, repo accounts.Repository, logger logging.Logger, m *metrics.Collector, timeout time.Duration) *HashingService {
	if logger == nil {
		logger = logging.Nop()
	}
	if m == nil {
		m = metrics.NewCollector(nil)
	}
	s := &HashingService{
		client:       c,
		accounts:     repo,
		logger:       logger.With("module", "hashing"),
		metrics:      m,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		timeout:      timeout,
		signals:      make(chan Signal, signalBuffer),
		consumerDone: make(chan struct{}),
	}
	go s.consume()
	return s
}

// SubmitHash sends user's password for hashing and returns without waiting
// for the remote. The returned Submission reports the outcome. Cancelling
// ctx after SubmitHash returns does not abort the request.
func (s *HashingService) SubmitHash(ctx context.Context, user models.User) (*Submission, error) {
	if err := s.validate.Struct(user); err != nil {
		s.metrics.HashOutcome(metrics.OutcomeRejected)
		return nil, fmt.Errorf("%w: %w", ErrInvalidUser, err)
	}

	s.mu.Lock()
	if s.closing {
		s.mu.Unlock()
		return nil, ErrShuttingDown
	}
	s.inflight.Add(1)
	s.mu.Unlock()

	sub := newSubmission(user)
	s.metrics.HashInFlight.Inc()
	s.logger.Info(ctx, "hash request submitted", "user_id", sub.UserID, "request_id", sub.ID.String())

	go s.produce(context.WithoutCancel(ctx), sub, user.Password)

	return sub, nil
}

// produce runs one RPC and emits its Signals.
func (s *HashingService) produce(ctx context.Context, sub *Submission, password string) {
	defer s.inflight.Done()

	ctx = client.ContextWithRequestID(ctx, sub.ID.String())
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	stream, err := s.client.Hash(ctx, sub.UserID, password)
	if err != nil {
		s.signals <- errSignal(sub, err)
		return
	}

	for {
		cred, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			s.signals <- doneSignal(sub)
			return
		}
		if err != nil {
			s.signals <- errSignal(sub, err)
			return
		}
		s.signals <- okSignal(sub, *cred)
	}
}

func (s *HashingService) consume() {
	defer close(s.consumerDone)
	for sig := range s.signals {
		s.handle(sig)
	}
}

func (s *HashingService) handle(sig Signal) {
	ctx := context.Background()
	sub := sig.Submission
	log := s.logger.With("user_id", sub.UserID, "request_id", sub.ID.String())

	switch sig.Kind {
	case SignalOk:
		if sub.pending != nil {
			log.Warn(ctx, "hash stream sent more than one response, keeping the last")
		}
		c := sig.Credential
		sub.pending = &c
		log.Debug(ctx, "hash response received")

	case SignalErr:
		sub.pending = nil
		st := status.Convert(sig.Err)
		log.Warn(ctx, "hash request failed", "code", st.Code().String(), "message", st.Message())
		s.finish(sub, StateFailed, sig.Err)

	case SignalDone:
		if sub.pending == nil {
			log.Warn(ctx, "hash request failed", "error", ErrEmptyHashResponse.Error())
			s.finish(sub, StateFailed, ErrEmptyHashResponse)
			return
		}
		acc := models.FinalizedAccount(sub.user, *sub.pending)
		sub.pending = nil
		if !acc.Finalized() {
			log.Warn(ctx, "hash request failed", "error", ErrIncompleteHashResponse.Error(),
				"salt_len", len(acc.Salt), "hash_len", len(acc.HashedPassword))
			s.finish(sub, StateFailed, ErrIncompleteHashResponse)
			return
		}
		s.accounts.Put(acc.UserID, acc)
		log.Info(ctx, "hash request completed")
		s.finish(sub, StateCompleted, nil)
	}
}

func (s *HashingService) finish(sub *Submission, state State, err error) {
	s.metrics.HashInFlight.Dec()
	if state == StateCompleted {
		s.metrics.HashOutcome(metrics.OutcomeCompleted)
	} else {
		s.metrics.HashOutcome(metrics.OutcomeFailed)
	}
	sub.finish(state, err)
}

// Shutdown stops accepting submissions and waits until every in-flight
// request has finished and the consumer has exited. If ctx ends first an
// error is returned and draining continues in the background; closing the
// channel afterwards makes the remaining requests fail fast.
func (s *HashingService) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if !s.closing {
		s.closing = true
		go func() {
			s.inflight.Wait()
			close(s.signals)
		}()
	}
	s.mu.Unlock()

	select {
	case <-s.consumerDone:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("hashing shutdown: %w", ctx.Err())
	}
}
