// Package hashing provides position keys and repetition counting for chess
// games.
package hashing

// RepetitionTable records the key of every position of a game in order and
// counts how often each key has occurred. Pushing and popping keep the
// counts exact, so undo never needs to replay the game.
type RepetitionTable struct {
	// keys is the key of each position, oldest first
	keys []uint64
	// counts maps a key to its number of occurrences in keys
	counts map[uint64]int
}

// NewRepetitionTable creates a table holding the given keys in order.
func NewRepetitionTable(keys ...uint64) *RepetitionTable {
	t := &RepetitionTable{}
	t.Reset(keys...)
	return t
}

// Push records a new position and returns its occurrence count.
func (t *RepetitionTable) Push(key uint64) int {
	t.keys = append(t.keys, key)
	t.counts[key]++
	return t.counts[key]
}

// Pop removes the most recent position. It returns false if the table is
// empty.
func (t *RepetitionTable) Pop() bool {
	if len(t.keys) == 0 {
		return false
	}
	key := t.keys[len(t.keys)-1]
	t.keys = t.keys[:len(t.keys)-1]
	if t.counts[key]--; t.counts[key] == 0 {
		delete(t.counts, key)
	}
	return true
}

// Count returns how often key has occurred.
func (t *RepetitionTable) Count(key uint64) int {
	return t.counts[key]
}

// Current returns the occurrence count of the most recent position.
func (t *RepetitionTable) Current() int {
	if len(t.keys) == 0 {
		return 0
	}
	return t.Count(t.keys[len(t.keys)-1])
}

// Max returns the highest occurrence count of any position.
func (t *RepetitionTable) Max() int {
	highest := 0
	for _, n := range t.counts {
		if n > highest {
			highest = n
		}
	}
	return highest
}

// Reset clears the table and records keys in order.
func (t *RepetitionTable) Reset(keys ...uint64) {
	t.keys = make([]uint64, 0, len(keys)+16)
	t.counts = make(map[uint64]int, len(keys)+16)
	for _, k := range keys {
		t.Push(k)
	}
}
