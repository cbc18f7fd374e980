// Package colorclass maps lattice coordinates to the key colors of the
// 31-EDO layout. Each class groups the residues of the lattice's step
// function that share an interval family modulo the octave.
package colorclass

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// EDO is the number of equal steps per octave
const EDO = 31

// Class identifies one of the key colors
type Class int

// Black is the zero value so that residues outside every set fall back to it.
const (
	Black Class = iota
	LightGray
	Teal
	Ochre
	Violet
	Rose
	Magenta
)

// Classes lists the named classes in display order, without Black
var Classes = []Class{LightGray, Teal, Ochre, Violet, Rose, Magenta}

type classInfo struct {
	name     string
	color    colorful.Color
	residues []int
}

var classInfos = map[Class]classInfo{
	Black:     {name: "black", color: mustHex("#000000")},
	LightGray: {name: "light gray", color: mustHex("#DFDFDF"), residues: []int{0, 5, 8, 13, 18, 21, 26}},
	Teal:      {name: "teal", color: mustHex("#176991"), residues: []int{2, 7, 10, 15, 20, 23, 28}},
	Ochre:     {name: "ochre", color: mustHex("#916C17"), residues: []int{3, 6, 11, 16, 19, 24, 29}},
	Violet:    {name: "violet", color: mustHex("#783FA7"), residues: []int{12, 25, 30}},
	Rose:      {name: "rose", color: mustHex("#A7453C"), residues: []int{1, 14, 27}},
	Magenta:   {name: "magenta", color: mustHex("#B35E96"), residues: []int{4, 9, 17, 22}},
}

// mustHex parses a "#RRGGBB" literal and panics on a malformed one
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// byResidue is built once from the residue sets; unset entries stay Black
var byResidue = buildTable()

func buildTable() [EDO]Class {
	var table [EDO]Class
	for _, c := range Classes {
		for _, r := range classInfos[c].residues {
			table[r] = c
		}
	}
	return table
}

// String returns the class name
func (c Class) String() string {
	if info, ok := classInfos[c]; ok {
		return info.name
	}
	return classInfos[Black].name
}

// Color returns the class color
func (c Class) Color() colorful.Color {
	if info, ok := classInfos[c]; ok {
		return info.color
	}
	return classInfos[Black].color
}

// Hex returns the color as six uppercase hex digits without a leading '#'
func (c Class) Hex() string {
	return strings.ToUpper(strings.TrimPrefix(c.Color().Hex(), "#"))
}

// Residues returns the residues assigned to the class
func (c Class) Residues() []int {
	rs := classInfos[c].residues
	out := make([]int, len(rs))
	copy(out, rs)
	return out
}

// Shift moves a board-local coordinate into the shared lattice. Board 2 is
// the reference; boards sit 5 columns and 2 rows apart.
func Shift(board, x, y int) (int, int) {
	return x + 5*board - 10, y + 2*board - 7
}

// Residue returns the step class of a key in 0..EDO-1
func Residue(board, x, y int) int {
	sx, sy := Shift(board, x, y)
	return posMod(5*sx+3*sy+8, EDO)
}

// ForResidue returns the class of a residue; anything unmapped is Black
func ForResidue(r int) Class {
	if r < 0 || r >= EDO {
		return Black
	}
	return byResidue[r]
}

// Of returns the color class of a key on a board
func Of(board, x, y int) Class {
	return ForResidue(Residue(board, x, y))
}

// posMod is modulo where the result is always in [0, n)
func posMod(a, n int) int {
	return ((a % n) + n) % n
}
