package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestHashRequest_WireLayout(t *testing.T) {
	m := &HashRequest{UserId: 7, Password: "pw"}
	b, err := m.MarshalWire()
	require.NoError(t, err)

	// field 1 varint 7, field 2 length-delimited "pw"
	require.Equal(t, []byte{0x08, 0x07, 0x12, 0x02, 'p', 'w'}, b)
}

func TestHashRequest_NegativeUserID(t *testing.T) {
	b, err := (&HashRequest{UserId: -1}).MarshalWire()
	require.NoError(t, err)

	var got HashRequest
	require.NoError(t, got.UnmarshalWire(b))
	require.Equal(t, int32(-1), got.UserId)
}

func TestHashResponse_Decode(t *testing.T) {
	in := &HashResponse{UserId: 100, HashedPassword: []byte{1, 2, 3}, Salt: []byte{9, 8}}
	b, err := in.MarshalWire()
	require.NoError(t, err)

	var out HashResponse
	require.NoError(t, out.UnmarshalWire(b))
	require.Equal(t, in, &out)

	// decoded slices must not alias the input buffer
	b[len(b)-1] = 0xFF
	require.Equal(t, []byte{9, 8}, out.Salt)
}

func TestValidateRequest_SkipsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 15, protowire.VarintType)
	b = protowire.AppendVarint(b, 42)
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, "secret")
	b = protowire.AppendTag(b, 16, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte("ignored"))

	var out ValidateRequest
	require.NoError(t, out.UnmarshalWire(b))
	require.Equal(t, "secret", out.Password)
	require.Nil(t, out.HashedPassword)
	require.Nil(t, out.Salt)
}

func TestValidateResponse_FalseIsEmpty(t *testing.T) {
	b, err := (&ValidateResponse{Validity: false}).MarshalWire()
	require.NoError(t, err)
	require.Empty(t, b)

	b, err = (&ValidateResponse{Validity: true}).MarshalWire()
	require.NoError(t, err)

	var out ValidateResponse
	require.NoError(t, out.UnmarshalWire(b))
	require.True(t, out.Validity)
}

func TestUnmarshal_Truncated(t *testing.T) {
	var out HashResponse
	err := out.UnmarshalWire([]byte{0x12, 0x05, 0x01})
	require.Error(t, err)
}

func TestGetters_NilReceiver(t *testing.T) {
	var r *HashResponse
	require.Zero(t, r.GetUserId())
	require.Nil(t, r.GetSalt())
	require.Nil(t, r.GetHashedPassword())

	var v *ValidateResponse
	require.False(t, v.GetValidity())
}

func TestCodec_RejectsForeignTypes(t *testing.T) {
	c := Codec{}
	require.Equal(t, "proto", c.Name())

	_, err := c.Marshal("not a message")
	require.ErrorContains(t, err, "cannot marshal")

	err = c.Unmarshal(nil, new(int))
	require.ErrorContains(t, err, "cannot unmarshal")

	var req ValidateRequest
	require.NoError(t, c.Unmarshal([]byte{0x0a, 0x01, 'x'}, &req))
	require.Equal(t, "x", req.Password)
}
