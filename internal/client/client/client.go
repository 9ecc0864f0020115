package client

import (
	"context"

	"github.com/dmitrijs2005/useraccount/internal/client/models"
)

// Client is the password service channel used by the hashing and validation flows.
type Client interface {
	Close() error
	Hash(ctx context.Context, userID int32, password string) (HashStream, error)
	Validate(ctx context.Context, password string, hashedPassword, salt []byte) (bool, error)
}

// HashStream yields the responses of one Hash call. Recv returns io.EOF once
// the server has completed the stream.
type HashStream interface {
	Recv() (*models.Credential, error)
}
