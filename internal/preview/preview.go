// Package preview draws the colored boards on a terminal so a layout can be
// checked before it is loaded into the keyboard.
package preview

import (
	"context"

	"github.com/PixPMusic/lumamap/internal/colorclass"
	"github.com/PixPMusic/lumamap/internal/layout"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Each key is drawn as a block this many cells wide
const keyWidth = 2

// Preview renders board sections on a screen
type Preview struct {
	screen tcell.Screen
	keys   []layout.KeyRecord
	boards int
	logger *zap.Logger
}

// New creates a preview of boards copies of a key layout. The screen must
// already be initialized.
func New(screen tcell.Screen, keys []layout.KeyRecord, boards int, logger *zap.Logger) *Preview {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Preview{
		screen: screen,
		keys:   keys,
		boards: boards,
		logger: logger,
	}
}

// Position returns the screen cell of a key's left edge. Boards are placed
// 5 columns and 2 rows apart on the lattice, and each row is offset by half
// a key to draw the hex grid.
func Position(board int, k layout.KeyRecord) (col, row int) {
	gx := k.X + 5*board
	gy := k.Y + 2*board
	return keyWidth*gx + gy, gy
}

func rgb(c colorclass.Class) tcell.Color {
	r, g, b := c.Color().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Draw renders all boards followed by a legend
func (p *Preview) Draw() {
	p.screen.Clear()

	bottom := 0
	for board := 0; board < p.boards; board++ {
		for _, k := range p.keys {
			col, row := Position(board, k)
			style := tcell.StyleDefault.Background(rgb(colorclass.Of(board, k.X, k.Y)))
			for i := 0; i < keyWidth; i++ {
				p.screen.SetContent(col+i, row, ' ', nil, style)
			}
			if row > bottom {
				bottom = row
			}
		}
	}

	p.drawLegend(bottom + 2)
	p.screen.Show()
}

func (p *Preview) drawLegend(row int) {
	col := 0
	for _, c := range colorclass.Classes {
		swatch := tcell.StyleDefault.Background(rgb(c))
		for i := 0; i < keyWidth; i++ {
			p.screen.SetContent(col+i, row, ' ', nil, swatch)
		}
		col += keyWidth + 1
		for _, r := range c.String() {
			p.screen.SetContent(col, row, r, nil, tcell.StyleDefault)
			col++
		}
		col += 2
	}
}

// handleEvent reports whether the preview should keep running
func (p *Preview) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		p.screen.Sync()
		p.Draw()
	case *tcell.EventInterrupt:
		return false
	case nil:
		// Screen was finalized
		return false
	}
	return true
}

// Run draws the preview and waits until the user quits or ctx is done
func (p *Preview) Run(ctx context.Context) error {
	p.Draw()
	p.logger.Debug("preview drawn", zap.Int("boards", p.boards), zap.Int("keys", len(p.keys)))

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = p.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	for p.handleEvent(p.screen.PollEvent()) {
	}
	return ctx.Err()
}
