package accounts

import (
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/useraccount/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finalized(id int32, tag string) models.Account {
	return models.Account{
		UserID:         id,
		UserName:       "user" + tag,
		Email:          tag + "@example.com",
		Salt:           []byte("salt-" + tag),
		HashedPassword: []byte("hash-" + tag),
	}
}

func TestNewInMemoryRepository_DemoSeed(t *testing.T) {
	r := NewInMemoryRepository(DemoAccounts()...)

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, int32(100), list[0].UserID)
	assert.Equal(t, int32(200), list[1].UserID)

	for _, acc := range list {
		assert.False(t, acc.Finalized())
		assert.Nil(t, acc.Salt)
		assert.Nil(t, acc.HashedPassword)
	}
}

func TestNewInMemoryRepository_Empty(t *testing.T) {
	r := NewInMemoryRepository()
	assert.Empty(t, r.List())
	assert.Equal(t, 0, r.Len())
}

func TestPutGet_RoundTrip(t *testing.T) {
	r := NewInMemoryRepository()
	acc := finalized(7, "a")

	r.Put(7, acc)

	got, ok := r.Get(7)
	require.True(t, ok)
	assert.Equal(t, acc, got)
}

func TestGet_MissingIsNotAnError(t *testing.T) {
	r := NewInMemoryRepository()
	got, ok := r.Get(404)
	assert.False(t, ok)
	assert.Equal(t, models.Account{}, got)
}

func TestPut_OverwritesLastWriteWins(t *testing.T) {
	r := NewInMemoryRepository()
	r.Put(7, finalized(7, "a"))
	r.Put(7, finalized(7, "b"))

	got, ok := r.Get(7)
	require.True(t, ok)
	assert.Equal(t, finalized(7, "b"), got)
	assert.Equal(t, 1, r.Len())
}

func TestRemove(t *testing.T) {
	r := NewInMemoryRepository(DemoAccounts()...)

	r.Remove(100)
	_, ok := r.Get(100)
	assert.False(t, ok)

	// absent key is a no-op
	r.Remove(100)
	r.Remove(999)
	assert.Len(t, r.List(), 1)
}

func TestList_IsSnapshot(t *testing.T) {
	r := NewInMemoryRepository()
	r.Put(1, finalized(1, "a"))

	snap := r.List()
	r.Put(2, finalized(2, "b"))
	r.Remove(1)

	require.Len(t, snap, 1)
	assert.Equal(t, int32(1), snap[0].UserID)
}

func TestValuesAreCopied(t *testing.T) {
	r := NewInMemoryRepository()
	acc := finalized(1, "a")
	r.Put(1, acc)

	acc.Salt[0] = 'X'
	got, _ := r.Get(1)
	assert.Equal(t, []byte("salt-a"), got.Salt)

	got.HashedPassword[0] = 'X'
	again, _ := r.Get(1)
	assert.Equal(t, []byte("hash-a"), again.HashedPassword)
}

func TestList_LengthMatchesDistinctKeys(t *testing.T) {
	r := NewInMemoryRepository()
	for i := int32(1); i <= 10; i++ {
		r.Put(i, finalized(i, "x"))
	}
	r.Put(3, finalized(3, "y"))
	r.Remove(4)
	r.Remove(5)
	r.Remove(42)

	assert.Len(t, r.List(), 8)
}

func TestConcurrentWritersNeverMixFields(t *testing.T) {
	r := NewInMemoryRepository()

	const writers = 8
	const rounds = 200

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			tag := fmt.Sprintf("w%d", w)
			for i := 0; i < rounds; i++ {
				r.Put(1, finalized(1, tag))
			}
		}(w)
	}

	stop := make(chan struct{})
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		for {
			select {
			case <-stop:
				return
			default:
			}
			if acc, ok := r.Get(1); ok {
				assertConsistent(t, acc)
			}
			for _, acc := range r.List() {
				assertConsistent(t, acc)
			}
		}
	}()

	wg.Wait()
	close(stop)
	<-readerDone

	acc, ok := r.Get(1)
	require.True(t, ok)
	assertConsistent(t, acc)
}

// assertConsistent checks that every field of acc came from the same writer.
func assertConsistent(t *testing.T, acc models.Account) {
	t.Helper()
	tag := acc.UserName[len("user"):]
	assert.Equal(t, tag+"@example.com", acc.Email)
	assert.Equal(t, "salt-"+tag, string(acc.Salt))
	assert.Equal(t, "hash-"+tag, string(acc.HashedPassword))
}
