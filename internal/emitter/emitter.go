// Package emitter writes the keyboard's per-board key configuration in the
// device editor's key=value format.
package emitter

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PixPMusic/lumamap/internal/colorclass"
	"github.com/PixPMusic/lumamap/internal/layout"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// Boards is the number of board sections on the keyboard
	Boards = 5

	// FirstChannel is the MIDI channel of board 0
	FirstChannel = 2

	// CCKeyType is the key type that makes a key send continuous controllers
	CCKeyType = 2
)

// namespace for output fingerprints
var fingerprintSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/PixPMusic/lumamap"))

// Options controls generation
type Options struct {
	// CCMode adds a key type override to every key
	CCMode bool
}

// Emitter renders configurations for a board section layout
type Emitter struct {
	keys   []layout.KeyRecord
	logger *zap.Logger
}

// New creates an emitter for the standard board section
func New(logger *zap.Logger) *Emitter {
	return NewWithKeys(layout.Section(), logger)
}

// NewWithKeys creates an emitter for an arbitrary key layout
func NewWithKeys(keys []layout.KeyRecord, logger *zap.Logger) *Emitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Emitter{keys: keys, logger: logger}
}

// Channel returns the MIDI channel of a board
func Channel(board int) int {
	return board + FirstChannel
}

// Render returns the full configuration text
func (e *Emitter) Render(opts Options) []byte {
	var buf bytes.Buffer
	for board := 0; board < Boards; board++ {
		e.writeBoard(&buf, board, opts)
	}
	writeGlobals(&buf)
	return buf.Bytes()
}

// Write renders the configuration and writes it to w in a single call. It
// returns the fingerprint of the bytes written.
func (e *Emitter) Write(w io.Writer, opts Options) (uuid.UUID, error) {
	out := e.Render(opts)
	id := Fingerprint(out)
	e.logger.Debug("rendered configuration",
		zap.Int("boards", Boards),
		zap.Int("keys_per_board", len(e.keys)),
		zap.Bool("cc_mode", opts.CCMode),
		zap.Int("bytes", len(out)),
		zap.Stringer("fingerprint", id),
	)
	if _, err := w.Write(out); err != nil {
		return uuid.Nil, fmt.Errorf("failed to write configuration: %w", err)
	}
	return id, nil
}

func (e *Emitter) writeBoard(buf *bytes.Buffer, board int, opts Options) {
	fmt.Fprintf(buf, "[Board%d]\n", board)
	for _, k := range e.keys {
		n := k.Key
		fmt.Fprintf(buf, "Key_%d=%d\n", n, n)
		fmt.Fprintf(buf, "Chan_%d=%d\n", n, Channel(board))
		fmt.Fprintf(buf, "Col_%d=%s\n", n, colorclass.Of(board, k.X, k.Y).Hex())
		fmt.Fprintf(buf, "CCInvert_%d\n", n)
		if opts.CCMode {
			fmt.Fprintf(buf, "KTyp_%d=%d\n", n, CCKeyType)
		}
	}
}

func writeGlobals(buf *bytes.Buffer) {
	for _, s := range GlobalSettings {
		fmt.Fprintf(buf, "%s=%d\n", s.Name, s.Value)
	}
	for _, c := range Curves() {
		fmt.Fprintf(buf, "%s=%s\n", c.Name, joinInts(c.Values))
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// Fingerprint returns a name-based UUID identifying a rendered configuration.
// Identical output always yields the same fingerprint.
func Fingerprint(out []byte) uuid.UUID {
	return uuid.NewSHA1(fingerprintSpace, out)
}
