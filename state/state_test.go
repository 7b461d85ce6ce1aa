package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillprotocol/skill/lvldb"
	"github.com/skillprotocol/skill/skill"
)

type record struct {
	Name  string
	Value uint64
}

const (
	tagFoo Tag = 0x10
	tagBar Tag = 0x11
)

func newTestState(t *testing.T) *State {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db)
}

func TestSetGet(t *testing.T) {
	st := newTestState(t)
	key := skill.Keccak([]byte("k1"))

	var got record
	assert.False(t, st.Get(key, tagFoo, &got))
	assert.False(t, st.Exists(key))

	st.Set(key, tagFoo, &record{Name: "a", Value: 42})
	require.True(t, st.Get(key, tagFoo, &got))
	assert.Equal(t, record{Name: "a", Value: 42}, got)
	assert.True(t, st.Exists(key))
	assert.NoError(t, st.Err())
}

func TestTagMismatch(t *testing.T) {
	st := newTestState(t)
	key := skill.Keccak([]byte("k1"))

	st.Set(key, tagFoo, &record{Name: "a"})

	var got record
	assert.False(t, st.Get(key, tagBar, &got))
	assert.Error(t, st.Err())
}

func TestDelete(t *testing.T) {
	st := newTestState(t)
	key := skill.Keccak([]byte("k1"))

	st.Set(key, tagFoo, &record{Name: "a"})
	st.Delete(key)

	var got record
	assert.False(t, st.Get(key, tagFoo, &got))
	assert.False(t, st.Exists(key))
	assert.NoError(t, st.Err())
}

func TestCheckpointRevert(t *testing.T) {
	st := newTestState(t)
	k1 := skill.Keccak([]byte("k1"))
	k2 := skill.Keccak([]byte("k2"))

	st.Set(k1, tagFoo, &record{Value: 1})

	cp := st.NewCheckpoint()
	st.Set(k1, tagFoo, &record{Value: 2})
	st.Set(k2, tagFoo, &record{Value: 3})
	st.RevertTo(cp)

	var got record
	require.True(t, st.Get(k1, tagFoo, &got))
	assert.Equal(t, uint64(1), got.Value)
	assert.False(t, st.Exists(k2))
}

func TestNestedCheckpoints(t *testing.T) {
	st := newTestState(t)
	key := skill.Keccak([]byte("k1"))

	cp1 := st.NewCheckpoint()
	st.Set(key, tagFoo, &record{Value: 1})
	cp2 := st.NewCheckpoint()
	st.Set(key, tagFoo, &record{Value: 2})

	st.RevertTo(cp2)
	var got record
	require.True(t, st.Get(key, tagFoo, &got))
	assert.Equal(t, uint64(1), got.Value)

	st.RevertTo(cp1)
	assert.False(t, st.Exists(key))
}

func TestCommit(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	k1 := skill.Keccak([]byte("k1"))
	k2 := skill.Keccak([]byte("k2"))

	st := New(db)
	st.Set(k1, tagFoo, &record{Value: 1})
	st.Set(k2, tagFoo, &record{Value: 2})
	st.Delete(k2)
	require.NoError(t, st.Commit())

	// A fresh state over the same store sees the committed records.
	st2 := New(db)
	var got record
	require.True(t, st2.Get(k1, tagFoo, &got))
	assert.Equal(t, uint64(1), got.Value)
	assert.False(t, st2.Exists(k2))
}

func TestCommitBlockedByError(t *testing.T) {
	st := newTestState(t)
	key := skill.Keccak([]byte("k1"))

	st.Set(key, tagFoo, &record{Value: 1})
	var got record
	st.Get(key, tagBar, &got) // provoke a tag mismatch
	require.Error(t, st.Err())

	assert.Error(t, st.Commit())
}
