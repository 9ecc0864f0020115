package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	PasswordService_Hash_FullMethodName     = "/passwordservice.PasswordService/Hash"
	PasswordService_Validate_FullMethodName = "/passwordservice.PasswordService/Validate"
)

// PasswordServiceClient is the client API for PasswordService.
type PasswordServiceClient interface {
	Hash(ctx context.Context, in *HashRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[HashResponse], error)
	Validate(ctx context.Context, in *ValidateRequest, opts ...grpc.CallOption) (*ValidateResponse, error)
}

type passwordServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPasswordServiceClient(cc grpc.ClientConnInterface) PasswordServiceClient {
	return &passwordServiceClient{cc}
}

func (c *passwordServiceClient) Hash(ctx context.Context, in *HashRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[HashResponse], error) {
	stream, err := c.cc.NewStream(ctx, &PasswordService_ServiceDesc.Streams[0], PasswordService_Hash_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[HashRequest, HashResponse]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *passwordServiceClient) Validate(ctx context.Context, in *ValidateRequest, opts ...grpc.CallOption) (*ValidateResponse, error) {
	out := new(ValidateResponse)
	err := c.cc.Invoke(ctx, PasswordService_Validate_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PasswordServiceServer is the server API for PasswordService.
type PasswordServiceServer interface {
	Hash(*HashRequest, grpc.ServerStreamingServer[HashResponse]) error
	Validate(context.Context, *ValidateRequest) (*ValidateResponse, error)
}

// UnimplementedPasswordServiceServer can be embedded to have forward compatible implementations.
type UnimplementedPasswordServiceServer struct{}

func (UnimplementedPasswordServiceServer) Hash(*HashRequest, grpc.ServerStreamingServer[HashResponse]) error {
	return status.Errorf(codes.Unimplemented, "method Hash not implemented")
}

func (UnimplementedPasswordServiceServer) Validate(context.Context, *ValidateRequest) (*ValidateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Validate not implemented")
}

func RegisterPasswordServiceServer(s grpc.ServiceRegistrar, srv PasswordServiceServer) {
	s.RegisterService(&PasswordService_ServiceDesc, srv)
}

func _PasswordService_Hash_Handler(srv any, stream grpc.ServerStream) error {
	m := new(HashRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(PasswordServiceServer).Hash(m, &grpc.GenericServerStream[HashRequest, HashResponse]{ServerStream: stream})
}

func _PasswordService_Validate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ValidateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PasswordServiceServer).Validate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PasswordService_Validate_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PasswordServiceServer).Validate(ctx, req.(*ValidateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PasswordService_ServiceDesc is the grpc.ServiceDesc for PasswordService.
var PasswordService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "passwordservice.PasswordService",
	HandlerType: (*PasswordServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Validate",
			Handler:    _PasswordService_Validate_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Hash",
			Handler:       _PasswordService_Hash_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "api/password.proto",
}
