package proto

import (
	"fmt"

	"google.golang.org/grpc"
)

// Message is implemented by every PasswordService message.
type Message interface {
	MarshalWire() ([]byte, error)
	UnmarshalWire([]byte) error
}

// Codec is a grpc encoding.Codec for Message values. Its name is "proto",
// so requests carry the standard application/grpc+proto content type and
// interoperate with servers built from api/password.proto.
type Codec struct{}

func (Codec) Name() string { return "proto" }

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("proto codec: cannot marshal %T", v)
	}
	return m.MarshalWire()
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("proto codec: cannot unmarshal into %T", v)
	}
	return m.UnmarshalWire(data)
}

// DialOption installs Codec on every call made through a client connection.
func DialOption() grpc.DialOption {
	return grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec{}))
}

// ServerOption installs Codec on a gRPC server.
func ServerOption() grpc.ServerOption {
	return grpc.ForceServerCodec(Codec{})
}
