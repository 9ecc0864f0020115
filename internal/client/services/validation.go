package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/useraccount/internal/client/client"
	"github.com/dmitrijs2005/useraccount/internal/logging"
	"github.com/dmitrijs2005/useraccount/internal/metrics"
	"github.com/google/uuid"
	"google.golang.org/grpc/status"
)

// PasswordValidator checks a password against a remote hash.
type PasswordValidator interface {
	Validate(ctx context.Context, password string, hashedPassword, salt []byte) (bool, error)
}

// ValidationService asks the password service whether a password matches a
// hash and salt issued by the hashing flow. It never touches the account store.
type ValidationService struct {
	client  PasswordValidator
	logger  logging.Logger
	metrics *metrics.Collector
	timeout time.Duration
}

// NewValidationService returns a ValidationService whose calls are bounded by
// timeout. A timeout of 0 relies on the deadline of the caller's context.
func NewValidationService(c PasswordValidator, logger logging.Logger, m *metrics.Collector, timeout time.Duration) *ValidationService {
	if logger == nil {
		logger = logging.Nop()
	}
	if m == nil {
		m = metrics.NewCollector(nil)
	}
	return &ValidationService{
		client:  c,
		logger:  logger.With("module", "validation"),
		metrics: m,
		timeout: timeout,
	}
}

// Validate blocks until the remote answers. The bool is meaningful only when
// err is nil: false then means the remote reported a mismatch. Any failure to
// obtain an answer is returned wrapped in ErrValidityUnknown.
func (s *ValidationService) Validate(ctx context.Context, password string, hashedPassword, salt []byte) (bool, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	requestID, ok := client.RequestIDFromContext(ctx)
	if !ok {
		requestID = uuid.NewString()
		ctx = client.ContextWithRequestID(ctx, requestID)
	}
	log := s.logger.With("request_id", requestID)

	log.Debug(ctx, "validate request", "hash_len", len(hashedPassword), "salt_len", len(salt))

	valid, err := s.client.Validate(ctx, password, hashedPassword, salt)
	if err != nil {
		st := status.Convert(err)
		log.Warn(ctx, "validate request failed", "code", st.Code().String(), "message", st.Message())
		s.metrics.ValidateOutcome(metrics.OutcomeUnknown)
		return false, fmt.Errorf("%w: %w", ErrValidityUnknown, err)
	}

	if valid {
		s.metrics.ValidateOutcome(metrics.OutcomeValid)
	} else {
		s.metrics.ValidateOutcome(metrics.OutcomeInvalid)
	}
	log.Info(ctx, "validate request answered", "validity", valid)
	return valid, nil
}
