package hashing

import "github.com/lgbarn/chess-referee-go/internal/chess"

// RepetitionTable counts how often each position has occurred. Positions
// are looked up by Zobrist key and confirmed by comparing squares, so key
// collisions never merge distinct positions.
type RepetitionTable struct {
	table map[uint64][]positionCount
	// maxCount is the highest count currently held by any position
	maxCount int
}

type positionCount struct {
	squares chess.Grid
	count   int
}

// NewRepetitionTable creates an empty repetition table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{table: make(map[uint64][]positionCount)}
}

// Add records one more occurrence of the position and returns the
// position's new count.
func (r *RepetitionTable) Add(squares *chess.Grid) int {
	key := HashGrid(squares)
	entries := r.table[key]
	for i := range entries {
		if entries[i].squares == *squares {
			entries[i].count++
			r.maxCount = max(r.maxCount, entries[i].count)
			return entries[i].count
		}
	}
	r.table[key] = append(entries, positionCount{squares: *squares, count: 1})
	r.maxCount = max(r.maxCount, 1)
	return 1
}

// Remove withdraws one occurrence of the position. Removing a position
// that was never added is a no-op.
func (r *RepetitionTable) Remove(squares *chess.Grid) {
	key := HashGrid(squares)
	entries := r.table[key]
	for i := range entries {
		if entries[i].squares != *squares {
			continue
		}
		wasMax := entries[i].count == r.maxCount
		entries[i].count--
		if entries[i].count == 0 {
			entries = append(entries[:i], entries[i+1:]...)
			if len(entries) == 0 {
				delete(r.table, key)
			} else {
				r.table[key] = entries
			}
		}
		if wasMax {
			r.recomputeMax()
		}
		return
	}
}

// Count returns how often the position has been recorded.
func (r *RepetitionTable) Count(squares *chess.Grid) int {
	for _, e := range r.table[HashGrid(squares)] {
		if e.squares == *squares {
			return e.count
		}
	}
	return 0
}

// MaxCount returns the highest occurrence count of any recorded position.
func (r *RepetitionTable) MaxCount() int {
	return r.maxCount
}

// UniqueCount returns the number of distinct positions recorded.
func (r *RepetitionTable) UniqueCount() int {
	count := 0
	for _, entries := range r.table {
		count += len(entries)
	}
	return count
}

// Reset clears the table.
func (r *RepetitionTable) Reset() {
	r.table = make(map[uint64][]positionCount)
	r.maxCount = 0
}

func (r *RepetitionTable) recomputeMax() {
	r.maxCount = 0
	for _, entries := range r.table {
		for _, e := range entries {
			r.maxCount = max(r.maxCount, e.count)
		}
	}
}
