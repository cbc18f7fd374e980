package midi

const (
	// BendRange is the pitch bend range in semitones the receiving synth is
	// expected to use (the MPE default)
	BendRange = 48

	// DefaultVelocity is the note-on velocity of a tuning table entry
	DefaultVelocity = 100

	bendMax    = 16383
	bendCenter = 8192
)

// Voice is one tuned key: a note plus a fractional offset on a channel
type Voice struct {
	Channel  uint8   // 0-15
	Note     uint8   // 0-127
	Bend     float64 // Semitones, relative to Note
	Velocity uint8   // 1-127
}
