package tuning

import (
	"fmt"
	"math"
	"strings"
)

const (
	// MiddleC is the frequency the lattice centre is tuned to
	MiddleC = 261.62

	concertA     = 440.0
	concertANote = 69
)

// System tunes the lattice by assigning a frequency ratio to each axis
type System struct {
	Name        string
	A           float64 // Ratio of one step along x
	B           float64 // Ratio of one step along y
	Description string
}

// Systems lists the available tunings; the first is the default
var Systems = []System{
	{
		Name:        "31 EDO",
		A:           math.Pow(2, 5.0/31.0),
		B:           math.Pow(2, 3.0/31.0),
		Description: "31-tone equal temperament",
	},
	{
		Name:        "31-esque Regression",
		A:           1.118755,
		B:           1.068773,
		Description: "Regression-based approximation of 31 EDO",
	},
}

// Default returns the default tuning
func Default() System {
	return Systems[0]
}

// ByName finds a tuning by case-insensitive name
func ByName(name string) (System, error) {
	for _, s := range Systems {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return System{}, fmt.Errorf("unknown tuning %q", name)
}

// Names returns the names of all tunings
func Names() []string {
	names := make([]string, len(Systems))
	for i, s := range Systems {
		names[i] = s.Name
	}
	return names
}

// Center moves a board-local coordinate so the middle of the keyboard
// sounds MiddleC
func Center(board, x, y int) (int, int) {
	return x + 5*board - 10, y + 2*board - 9
}

// Frequency returns the frequency of a key in Hz
func (s System) Frequency(board, x, y int) float64 {
	cx, cy := Center(board, x, y)
	return MiddleC * math.Pow(s.A, float64(cx)) * math.Pow(s.B, float64(cy))
}

// Pitch returns the nearest MIDI note of a key and the remaining offset in
// semitones. Notes are clamped to 0..127, so the offset may be large at the
// edges.
func (s System) Pitch(board, x, y int) (note uint8, bend float64) {
	m := 12*math.Log2(s.Frequency(board, x, y)/concertA) + concertANote
	n := math.Round(m)
	if n < 0 {
		n = 0
	} else if n > 127 {
		n = 127
	}
	return uint8(n), m - n
}
