package state

import "github.com/skillprotocol/skill/skill"

// entry is one journaled write. A nil data with deleted set marks removal.
type entry struct {
	data    []byte
	deleted bool
}

// journal maintains record writes in a stack of levels.
// Each level inherits key/value of levels below it, acting as a map with
// checkpoint/revert manner.
type journal struct {
	levels []map[skill.Bytes32]entry
}

func newJournal() *journal {
	return &journal{levels: []map[skill.Bytes32]entry{make(map[skill.Bytes32]entry)}}
}

// push pushes a new level and returns the depth before push.
func (j *journal) push() int {
	j.levels = append(j.levels, make(map[skill.Bytes32]entry))
	return len(j.levels) - 1
}

// popTo drops levels until depth is reached, reverting all writes since
// the matching push.
func (j *journal) popTo(depth int) {
	if depth < 1 {
		depth = 1
	}
	for len(j.levels) > depth {
		j.levels = j.levels[:len(j.levels)-1]
	}
}

// put records a write at the top level.
func (j *journal) put(key skill.Bytes32, e entry) {
	j.levels[len(j.levels)-1][key] = e
}

// get looks the key up from top level down.
func (j *journal) get(key skill.Bytes32) (entry, bool) {
	for i := len(j.levels) - 1; i >= 0; i-- {
		if e, ok := j.levels[i][key]; ok {
			return e, true
		}
	}
	return entry{}, false
}

// flatten merges all levels bottom-up into the effective write set.
func (j *journal) flatten() map[skill.Bytes32]entry {
	out := make(map[skill.Bytes32]entry)
	for _, lvl := range j.levels {
		for k, e := range lvl {
			out[k] = e
		}
	}
	return out
}

// reset drops everything, leaving a single empty base level.
func (j *journal) reset() {
	j.levels = []map[skill.Bytes32]entry{make(map[skill.Bytes32]entry)}
}
