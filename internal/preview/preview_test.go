package preview

import (
	"context"
	"testing"
	"time"

	"github.com/PixPMusic/lumamap/internal/colorclass"
	"github.com/PixPMusic/lumamap/internal/layout"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func TestPosition(t *testing.T) {
	tests := []struct {
		board    int
		key      layout.KeyRecord
		col, row int
	}{
		{0, layout.KeyRecord{Key: 0, X: 0, Y: 0}, 0, 0},
		{0, layout.KeyRecord{Key: 7, X: -1, Y: 2}, 0, 2},
		{1, layout.KeyRecord{Key: 0, X: 0, Y: 0}, 12, 2},
		{4, layout.KeyRecord{Key: 55, X: 0, Y: 10}, 58, 18},
	}
	for _, tt := range tests {
		col, row := Position(tt.board, tt.key)
		assert.Equal(t, tt.col, col, "board %d key %d", tt.board, tt.key.Key)
		assert.Equal(t, tt.row, row, "board %d key %d", tt.board, tt.key.Key)
	}
}

func TestAllBoardsFitOnScreen(t *testing.T) {
	for board := 0; board < 5; board++ {
		for _, k := range layout.Section() {
			col, row := Position(board, k)
			assert.GreaterOrEqual(t, col, 0)
			assert.Less(t, col+keyWidth, 80)
			assert.Less(t, row, 20)
		}
	}
}

func TestDrawColorsKeys(t *testing.T) {
	screen := newScreen(t)
	keys := layout.Section()
	New(screen, keys, 5, nil).Draw()

	for _, board := range []int{0, 2, 4} {
		for _, k := range []layout.KeyRecord{keys[0], keys[30], keys[55]} {
			col, row := Position(board, k)
			want := rgb(colorclass.Of(board, k.X, k.Y))
			for i := 0; i < keyWidth; i++ {
				_, _, style, _ := screen.GetContent(col+i, row)
				_, bg, _ := style.Decompose()
				assert.Equal(t, want, bg, "board %d key %d", board, k.Key)
			}
		}
	}

	_, _, style, _ := screen.GetContent(0, 0)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0x78, 0x3F, 0xA7), bg)
}

func TestDrawLegend(t *testing.T) {
	screen := newScreen(t)
	New(screen, layout.Section(), 5, nil).Draw()

	// Bottom key row is 18, so the legend sits on row 20.
	_, _, style, _ := screen.GetContent(0, 20)
	_, bg, _ := style.Decompose()
	assert.Equal(t, rgb(colorclass.LightGray), bg)

	mainc, _, _, _ := screen.GetContent(keyWidth+1, 20)
	assert.Equal(t, 'l', mainc)
}

func TestHandleEvent(t *testing.T) {
	p := New(newScreen(t), layout.Section(), 5, nil)

	assert.False(t, p.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, p.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.False(t, p.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, p.handleEvent(nil))
	assert.True(t, p.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}

func TestRunStopsOnContext(t *testing.T) {
	p := New(newScreen(t), layout.Section(), 5, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := p.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
