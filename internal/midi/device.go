package midi

import (
	"fmt"
	"math"
	"strings"

	"gitlab.com/gomidi/midi/v2"
)

// NewVoice creates a voice for a 1-based channel number as shown by the
// keyboard's editor
func NewVoice(channel int, note uint8, bend float64) Voice {
	ch := channel - 1
	if ch < 0 || ch > 15 {
		ch = 0
	}
	return Voice{
		Channel:  uint8(ch),
		Note:     note & 0x7F,
		Bend:     bend,
		Velocity: DefaultVelocity,
	}
}

// PitchbendValue returns the bend as a signed 14-bit pitch wheel value
func (v Voice) PitchbendValue() int16 {
	raw := math.Round(bendMax * ((v.Bend/BendRange)/2 + 0.5))
	if raw < 0 {
		raw = 0
	} else if raw > bendMax {
		raw = bendMax
	}
	return int16(raw) - bendCenter
}

// Messages returns the pitch bend followed by the note-on for the voice
func (v Voice) Messages() []midi.Message {
	return []midi.Message{
		midi.Pitchbend(v.Channel, v.PitchbendValue()),
		midi.NoteOn(v.Channel, v.Note, v.Velocity),
	}
}

// Play sends the voice's messages in order
func (v Voice) Play(send func(midi.Message) error) error {
	for _, msg := range v.Messages() {
		if err := send(msg); err != nil {
			return fmt.Errorf("failed to send %s: %w", msg, err)
		}
	}
	return nil
}

// Hex formats messages as space-separated uppercase hex bytes
func Hex(msgs []midi.Message) string {
	parts := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		parts = append(parts, fmt.Sprintf("% X", []byte(msg)))
	}
	return strings.Join(parts, " ")
}
