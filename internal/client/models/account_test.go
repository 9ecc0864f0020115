package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Finalized(t *testing.T) {
	tests := []struct {
		name string
		acc  Account
		want bool
	}{
		{"pending", Account{UserID: 1}, false},
		{"salt only", Account{UserID: 1, Salt: []byte{1}}, false},
		{"hash only", Account{UserID: 1, HashedPassword: []byte{1}}, false},
		{"finalized", Account{UserID: 1, Salt: []byte{1}, HashedPassword: []byte{2}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.acc.Finalized())
		})
	}
}

func TestAccount_CloneDoesNotAlias(t *testing.T) {
	a := Account{UserID: 1, Salt: []byte{1, 2}, HashedPassword: []byte{3, 4}}
	c := a.Clone()
	c.Salt[0] = 9
	c.HashedPassword[0] = 9

	require.Equal(t, []byte{1, 2}, a.Salt)
	require.Equal(t, []byte{3, 4}, a.HashedPassword)
}

func TestAccount_ClonePendingKeepsNil(t *testing.T) {
	c := Account{UserID: 1}.Clone()
	assert.Nil(t, c.Salt)
	assert.Nil(t, c.HashedPassword)
}

func TestFinalizedAccount(t *testing.T) {
	u := User{UserID: 7, UserName: "bob", Email: "bob@example.com", Password: "pw"}
	c := Credential{UserID: 7, Salt: []byte("S"), HashedPassword: []byte("H")}

	got := FinalizedAccount(u, c)

	assert.Equal(t, Account{UserID: 7, UserName: "bob", Email: "bob@example.com", Salt: []byte("S"), HashedPassword: []byte("H")}, got)
	assert.True(t, got.Finalized())

	c.Salt[0] = 'X'
	assert.Equal(t, []byte("S"), got.Salt)
}
