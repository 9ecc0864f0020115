// Package client is the transport to the remote password service.
//
// # Overview
//
// GRPCClient owns a single *grpc.ClientConn for its whole lifetime. Many
// Hash and Validate calls may be outstanding on it at once; the connection
// is released only by Close, never by the completion of a request.
//
//   - Hash opens a server stream and returns a HashStream; the caller drains
//     it until io.EOF (completed) or another error.
//   - Validate is a unary call that blocks until the remote answers, the
//     context deadline passes or the connection fails.
//
// # Error Handling
//
// gRPC status codes are mapped onto sentinel errors that callers match with
// errors.Is: ErrUnavailable, ErrRejected, ErrClosed. The original status is
// kept in the error chain, so status.Code still reports it.
//
// # Request IDs
//
// ContextWithRequestID attaches an id that the client interceptors forward
// in the x-request-id header.
package client
