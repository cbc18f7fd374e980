package midi

import (
	"bytes"
	"fmt"
	"io"

	"github.com/PixPMusic/lumamap/internal/layout"
	"github.com/PixPMusic/lumamap/internal/tuning"
	"gitlab.com/gomidi/midi/v2"
)

// Entry is the tuned voice of one key on one board
type Entry struct {
	Board int
	Key   int
	Voice Voice
}

// TuningTable computes the voice of every key on every board. Board b
// plays on channel b+firstChannel.
func TuningTable(sys tuning.System, boards, firstChannel int, keys []layout.KeyRecord) []Entry {
	entries := make([]Entry, 0, boards*len(keys))
	for board := 0; board < boards; board++ {
		for _, k := range keys {
			note, bend := sys.Pitch(board, k.X, k.Y)
			entries = append(entries, Entry{
				Board: board,
				Key:   k.Key,
				Voice: NewVoice(board+firstChannel, note, bend),
			})
		}
	}
	return entries
}

// WriteTable writes a tuning table grouped by board
func WriteTable(w io.Writer, sys tuning.System, entries []Entry) error {
	var buf bytes.Buffer
	board := -1
	for _, e := range entries {
		if e.Board != board {
			board = e.Board
			fmt.Fprintf(&buf, "[Board%d] tuning=%s\n", board, sys.Name)
		}

		var sent []midi.Message
		err := e.Voice.Play(func(msg midi.Message) error {
			sent = append(sent, msg)
			return nil
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(&buf, "Key_%d note=%d bend=%+.4f midi=%s\n", e.Key, e.Voice.Note, e.Voice.Bend, Hex(sent))
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write tuning table: %w", err)
	}
	return nil
}
