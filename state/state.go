package state

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/skillprotocol/skill/kv"
	"github.com/skillprotocol/skill/skill"
)

// Tag is the leading record type tag persisted before the encoded body.
// It distinguishes record kinds at the storage layer.
type Tag byte

// Error is the error caused by state access failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.cause)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// State manages keyed game records atop a kv store. Writes are journaled,
// so a state transition can be checkpointed and reverted as a whole.
//
// Access errors are deferred: getters/setters never return them directly,
// check Err() before committing.
type State struct {
	store kv.GetPutter
	jrn   *journal
	err   error
}

// New creates a state over the given store.
func New(store kv.GetPutter) *State {
	return &State{
		store: store,
		jrn:   newJournal(),
	}
}

// Err returns the first access error occurred, if any.
func (s *State) Err() error {
	return s.err
}

func (s *State) setError(err error) {
	if s.err == nil {
		s.err = &Error{err}
	}
}

// load returns raw record bytes and existence, consulting the journal first.
func (s *State) load(key skill.Bytes32) ([]byte, bool) {
	if e, ok := s.jrn.get(key); ok {
		return e.data, !e.deleted
	}
	data, err := s.store.Get(key.Bytes())
	if err != nil {
		if !s.store.IsNotFound(err) {
			s.setError(err)
		}
		return nil, false
	}
	return data, true
}

// Exists returns whether a record is present under the key.
func (s *State) Exists(key skill.Bytes32) bool {
	_, ok := s.load(key)
	return ok
}

// Get decodes the record stored under key into val.
// It returns false if no record exists. A type tag mismatch or decoding
// failure is reported via Err().
func (s *State) Get(key skill.Bytes32, tag Tag, val any) bool {
	data, ok := s.load(key)
	if !ok {
		return false
	}
	if len(data) == 0 || Tag(data[0]) != tag {
		s.setError(errors.Errorf("record %v: type tag mismatch", key.AbbrevString()))
		return false
	}
	if err := rlp.DecodeBytes(data[1:], val); err != nil {
		s.setError(errors.Wrapf(err, "decode record %v", key.AbbrevString()))
		return false
	}
	return true
}

// Set journals the record under key, prefixed with its type tag.
func (s *State) Set(key skill.Bytes32, tag Tag, val any) {
	data, err := rlp.EncodeToBytes(val)
	if err != nil {
		s.setError(errors.Wrapf(err, "encode record %v", key.AbbrevString()))
		return
	}
	s.jrn.put(key, entry{data: append([]byte{byte(tag)}, data...)})
}

// Delete journals removal of the record under key.
func (s *State) Delete(key skill.Bytes32) {
	s.jrn.put(key, entry{deleted: true})
}

// NewCheckpoint makes a checkpoint of current state.
// It returns a checkpoint to be passed to RevertTo.
func (s *State) NewCheckpoint() int {
	return s.jrn.push()
}

// RevertTo reverts all writes made since the checkpoint was taken.
func (s *State) RevertTo(checkpoint int) {
	s.jrn.popTo(checkpoint)
}

// Commit writes all journaled changes to the underlying store in one batch.
// The journal is cleared on success.
func (s *State) Commit() error {
	if s.err != nil {
		return s.err
	}
	batch := s.store.NewBatch()
	for key, e := range s.jrn.flatten() {
		if e.deleted {
			if err := batch.Delete(key.Bytes()); err != nil {
				return &Error{err}
			}
			continue
		}
		if err := batch.Put(key.Bytes(), e.data); err != nil {
			return &Error{err}
		}
	}
	if err := batch.Write(); err != nil {
		return &Error{err}
	}
	s.jrn.reset()
	return nil
}
