// Package passwordtest runs an in-process PasswordService over bufconn so
// that clients can be exercised end to end without a network.
package passwordtest

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"net"
	"sync"
	"testing"
	"time"

	pb "github.com/dmitrijs2005/useraccount/internal/proto"
	"golang.org/x/crypto/argon2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

const (
	bufSize = 1 << 20
	saltLen = 16

	requestIDHeader = "x-request-id"
)

// HashPassword is the algorithm used by Server. Cheap parameters keep tests fast.
func HashPassword(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, 1, 8*1024, 1, 32)
}

// Server is a configurable fake PasswordService.
type Server struct {
	pb.UnimplementedPasswordServiceServer

	mu            sync.Mutex
	hashErr       error
	validateErr   error
	emptyHash     bool
	errAfterData  error
	hashGate      chan struct{}
	validateDelay time.Duration
	hashCalls     int
	validateCalls int
	requestIDs    []string
}

func NewServer() *Server {
	return &Server{}
}

// FailHash makes every Hash call return err (a status error) before sending data.
func (s *Server) FailHash(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hashErr = err
}

// FailHashAfterData makes Hash send a response and then terminate with err.
func (s *Server) FailHashAfterData(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errAfterData = err
}

// CompleteHashEmpty makes Hash complete the stream without sending a response.
func (s *Server) CompleteHashEmpty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emptyHash = true
}

// FailValidate makes every Validate call return err.
func (s *Server) FailValidate(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.validateErr = err
}

// DelayValidate holds every Validate call for d or until the caller gives up.
func (s *Server) DelayValidate(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.validateDelay = d
}

// HoldHash blocks Hash calls until the returned release func is called.
func (s *Server) HoldHash() (release func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gate := make(chan struct{})
	s.hashGate = gate
	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

func (s *Server) HashCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hashCalls
}

func (s *Server) ValidateCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateCalls
}

// RequestIDs returns the x-request-id values seen so far, in arrival order.
// Calls without the header are recorded as "".
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requestIDs...)
}

func (s *Server) recordRequestID(ctx context.Context) {
	var id string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(requestIDHeader); len(values) > 0 {
			id = values[0]
		}
	}
	s.mu.Lock()
	s.requestIDs = append(s.requestIDs, id)
	s.mu.Unlock()
}

func (s *Server) requestIDUnaryInterceptor(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	s.recordRequestID(ctx)
	return handler(ctx, req)
}

func (s *Server) requestIDStreamInterceptor(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	s.recordRequestID(ss.Context())
	return handler(srv, ss)
}

func (s *Server) Hash(req *pb.HashRequest, stream grpc.ServerStreamingServer[pb.HashResponse]) error {
	s.mu.Lock()
	s.hashCalls++
	gate, hashErr, empty, errAfter := s.hashGate, s.hashErr, s.emptyHash, s.errAfterData
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-stream.Context().Done():
			return stream.Context().Err()
		}
	}

	if hashErr != nil {
		return hashErr
	}
	if empty {
		return nil
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return err
	}

	resp := &pb.HashResponse{
		UserId:         req.GetUserId(),
		HashedPassword: HashPassword(req.GetPassword(), salt),
		Salt:           salt,
	}
	if err := stream.Send(resp); err != nil {
		return err
	}
	return errAfter
}

func (s *Server) Validate(ctx context.Context, req *pb.ValidateRequest) (*pb.ValidateResponse, error) {
	s.mu.Lock()
	s.validateCalls++
	delay, validateErr := s.validateDelay, s.validateErr
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if validateErr != nil {
		return nil, validateErr
	}

	candidate := HashPassword(req.GetPassword(), req.GetSalt())
	valid := subtle.ConstantTimeCompare(candidate, req.GetHashedPassword()) == 1
	return &pb.ValidateResponse{Validity: valid}, nil
}

// Target is the dial target of a server started with Start.
const Target = "passthrough:///bufnet"

// Start serves srv on an in-memory listener for the lifetime of the test and
// returns dial options that route Target to it.
func Start(tb testing.TB, srv *Server) []grpc.DialOption {
	tb.Helper()

	lis := bufconn.Listen(bufSize)
	gs := grpc.NewServer(
		pb.ServerOption(),
		grpc.ChainUnaryInterceptor(srv.requestIDUnaryInterceptor),
		grpc.ChainStreamInterceptor(srv.requestIDStreamInterceptor),
	)
	pb.RegisterPasswordServiceServer(gs, srv)

	go func() {
		_ = gs.Serve(lis)
	}()
	tb.Cleanup(func() {
		gs.Stop()
		_ = lis.Close()
	})

	dialer := func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}
	return []grpc.DialOption{grpc.WithContextDialer(dialer)}
}
