// Package proto holds the PasswordService wire contract described in
// api/password.proto: request/response messages, a gRPC codec that encodes
// them in the protobuf binary format, and the client/server stubs.
//
// The stubs mirror the shape of protoc-gen-go-grpc output so that callers
// use the familiar pb.NewPasswordServiceClient / pb.RegisterPasswordServiceServer
// pair. Both sides of a connection must install Codec (see DialOption and
// ServerOption).
package proto
