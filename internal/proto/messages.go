package proto

import "google.golang.org/protobuf/encoding/protowire"

// HashRequest asks the service to hash Password on behalf of UserId.
type HashRequest struct {
	UserId   int32
	Password string
}

func (x *HashRequest) GetUserId() int32 {
	if x != nil {
		return x.UserId
	}
	return 0
}

func (x *HashRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

func (x *HashRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendInt32(b, 1, x.UserId)
	b = appendString(b, 2, x.Password)
	return b, nil
}

func (x *HashRequest) UnmarshalWire(b []byte) error {
	*x = HashRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case num == 1 && typ == protowire.VarintType:
			return consumeInt32(b, &x.UserId)
		case num == 2 && typ == protowire.BytesType:
			return consumeString(b, &x.Password)
		}
		return 0
	})
}

// HashResponse carries the salt and hash produced for UserId.
type HashResponse struct {
	UserId         int32
	HashedPassword []byte
	Salt           []byte
}

func (x *HashResponse) GetUserId() int32 {
	if x != nil {
		return x.UserId
	}
	return 0
}

func (x *HashResponse) GetHashedPassword() []byte {
	if x != nil {
		return x.HashedPassword
	}
	return nil
}

func (x *HashResponse) GetSalt() []byte {
	if x != nil {
		return x.Salt
	}
	return nil
}

func (x *HashResponse) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendInt32(b, 1, x.UserId)
	b = appendBytes(b, 2, x.HashedPassword)
	b = appendBytes(b, 3, x.Salt)
	return b, nil
}

func (x *HashResponse) UnmarshalWire(b []byte) error {
	*x = HashResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case num == 1 && typ == protowire.VarintType:
			return consumeInt32(b, &x.UserId)
		case num == 2 && typ == protowire.BytesType:
			return consumeBytes(b, &x.HashedPassword)
		case num == 3 && typ == protowire.BytesType:
			return consumeBytes(b, &x.Salt)
		}
		return 0
	})
}

// ValidateRequest asks whether Password combined with Salt reproduces HashedPassword.
type ValidateRequest struct {
	Password       string
	HashedPassword []byte
	Salt           []byte
}

func (x *ValidateRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

func (x *ValidateRequest) GetHashedPassword() []byte {
	if x != nil {
		return x.HashedPassword
	}
	return nil
}

func (x *ValidateRequest) GetSalt() []byte {
	if x != nil {
		return x.Salt
	}
	return nil
}

func (x *ValidateRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, x.Password)
	b = appendBytes(b, 2, x.HashedPassword)
	b = appendBytes(b, 3, x.Salt)
	return b, nil
}

func (x *ValidateRequest) UnmarshalWire(b []byte) error {
	*x = ValidateRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case num == 1 && typ == protowire.BytesType:
			return consumeString(b, &x.Password)
		case num == 2 && typ == protowire.BytesType:
			return consumeBytes(b, &x.HashedPassword)
		case num == 3 && typ == protowire.BytesType:
			return consumeBytes(b, &x.Salt)
		}
		return 0
	})
}

type ValidateResponse struct {
	Validity bool
}

func (x *ValidateResponse) GetValidity() bool {
	if x != nil {
		return x.Validity
	}
	return false
}

func (x *ValidateResponse) MarshalWire() ([]byte, error) {
	var b []byte
	if x.Validity {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(true))
	}
	return b, nil
}

func (x *ValidateResponse) UnmarshalWire(b []byte) error {
	*x = ValidateResponse{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 && typ == protowire.VarintType {
			v, n := protowire.ConsumeVarint(b)
			if n >= 0 {
				x.Validity = protowire.DecodeBool(v)
			}
			return n
		}
		return 0
	})
}
