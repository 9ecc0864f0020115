package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/useraccount/internal/client/models"
	pb "github.com/dmitrijs2005/useraccount/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.PasswordServiceClient

	mu     sync.RWMutex
	closed bool
}

// NewPasswordServiceClient creates a client for the password service at
// endpointURL. The connection is established lazily by the first call.
// Extra dial options are appended to the defaults (plaintext transport,
// PasswordService codec, request id interceptors).
func NewPasswordServiceClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient(opts ...grpc.DialOption) error {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		pb.DialOption(),
		grpc.WithUnaryInterceptor(requestIDUnaryInterceptor),
		grpc.WithStreamInterceptor(requestIDStreamInterceptor),
	}
	dialOpts = append(dialOpts, opts...)

	conn, err := grpc.NewClient(s.endpointURL, dialOpts...)
	if err != nil {
		return fmt.Errorf("password service client init: %w", err)
	}
	s.conn = conn
	s.client = pb.NewPasswordServiceClient(conn)
	return nil
}

// Target returns the dial target of the underlying connection.
func (s *GRPCClient) Target() string {
	return s.endpointURL
}

// Close releases the connection. Outstanding calls fail; later calls return
// ErrClosed. Closing twice is a no-op.
func (s *GRPCClient) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

func (s *GRPCClient) Hash(ctx context.Context, userID int32, password string) (HashStream, error) {
	if s.isClosed() {
		return nil, ErrClosed
	}

	req := &pb.HashRequest{UserId: userID, Password: password}

	stream, err := s.client.Hash(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return &hashStream{stream: stream, mapError: s.mapError}, nil
}

func (s *GRPCClient) Validate(ctx context.Context, password string, hashedPassword, salt []byte) (bool, error) {
	if s.isClosed() {
		return false, ErrClosed
	}

	req := &pb.ValidateRequest{Password: password, HashedPassword: hashedPassword, Salt: salt}

	resp, err := s.client.Validate(ctx, req)
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.GetValidity(), nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		return err
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Canceled:
		// the conn cancels outstanding calls when Close races with them
		if s.isClosed() {
			return fmt.Errorf("%w: %w", ErrClosed, err)
		}
		return fmt.Errorf("rpc error: %w", err)
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange,
		codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %w", ErrRejected, err)
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

type hashStream struct {
	stream   grpc.ServerStreamingClient[pb.HashResponse]
	mapError func(error) error
}

func (h *hashStream) Recv() (*models.Credential, error) {
	resp, err := h.stream.Recv()
	if err != nil {
		return nil, h.mapError(err)
	}
	return &models.Credential{
		UserID:         resp.GetUserId(),
		Salt:           resp.GetSalt(),
		HashedPassword: resp.GetHashedPassword(),
	}, nil
}
