// Package models defines the records exchanged between the password service
// clients and the account store.
package models

import "bytes"

// User is an account as presented by a caller, carrying the plaintext
// password that still has to be hashed. Password is never stored.
//
// Submissions are checked against the validate tags before any RPC: the id
// must be positive, the email well formed, and name and password non-empty.
type User struct {
	UserID   int32  `json:"userId" validate:"gt=0"`
	UserName string `json:"userName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"-" validate:"required"`
}

// Account is a stored user account. Salt and HashedPassword are nil while the
// account is pending and both set once hashing has completed.
type Account struct {
	UserID         int32
	UserName       string
	Email          string
	Salt           []byte
	HashedPassword []byte
}

// Finalized reports whether the account carries a salt and a hash.
func (a Account) Finalized() bool {
	return len(a.Salt) > 0 && len(a.HashedPassword) > 0
}

// Clone returns a copy that shares no memory with a.
func (a Account) Clone() Account {
	a.Salt = bytes.Clone(a.Salt)
	a.HashedPassword = bytes.Clone(a.HashedPassword)
	return a
}

// Credential is the result of a remote hash operation.
type Credential struct {
	UserID         int32
	Salt           []byte
	HashedPassword []byte
}

// FinalizedAccount builds the finalized account of u from c.
func FinalizedAccount(u User, c Credential) Account {
	return Account{
		UserID:         u.UserID,
		UserName:       u.UserName,
		Email:          u.Email,
		Salt:           bytes.Clone(c.Salt),
		HashedPassword: bytes.Clone(c.HashedPassword),
	}
}
