package layout

import "fmt"

// KeysPerBoard is the number of keys on one board section
const KeysPerBoard = 56

// RowTable holds the row lengths of one board, top row first
var RowTable = [...]int{2, 5, 6, 6, 6, 6, 6, 6, 6, 5, 2}

// KeyRecord places a key on the oblique lattice
type KeyRecord struct {
	Key int // Sequential index across the section (0-based)
	X   int // Lattice column
	Y   int // Lattice row
}

// cursor is the fold accumulator carried from one row to the next
type cursor struct {
	keyNo int
	rowNo int
	xoffs int
}

// advance returns the cursor for the row following one of length rowLen.
// The row checks run in a fixed order even though they never co-trigger
// for RowTable.
func (c cursor) advance(rowLen int) cursor {
	next := cursor{
		keyNo: c.keyNo + rowLen,
		rowNo: c.rowNo + 1,
		xoffs: c.xoffs,
	}
	switch next.rowNo {
	case 2, 4, 6, 8:
		next.xoffs--
	}
	if next.rowNo == 9 {
		next.xoffs++
	}
	if next.rowNo == 10 {
		next.xoffs += 2
	}
	return next
}

// row returns the keys of a row of length rowLen starting at the cursor
func (c cursor) row(rowLen int) []KeyRecord {
	keys := make([]KeyRecord, rowLen)
	for n := range keys {
		keys[n] = KeyRecord{
			Key: c.keyNo + n,
			X:   n + c.xoffs,
			Y:   c.rowNo,
		}
	}
	return keys
}

// Build folds a sequence of row lengths into key records ordered by key index
func Build(rows []int) []KeyRecord {
	total := 0
	for _, l := range rows {
		total += l
	}

	keys := make([]KeyRecord, 0, total)
	var c cursor
	for _, rowLen := range rows {
		keys = append(keys, c.row(rowLen)...)
		c = c.advance(rowLen)
	}
	return keys
}

var section = Build(RowTable[:])

// Section returns the key records of a single board built from RowTable.
// The returned slice is a copy.
func Section() []KeyRecord {
	keys := make([]KeyRecord, len(section))
	copy(keys, section)
	return keys
}

// Lookup returns the lattice coordinate of a key on a board section
func Lookup(key int) (x, y int, err error) {
	if key < 0 || key >= len(section) {
		return 0, 0, fmt.Errorf("key %d out of range 0-%d", key, len(section)-1)
	}
	k := section[key]
	return k.X, k.Y, nil
}
