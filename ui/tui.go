package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// tuiScale converts terminal columns into the synthetic pixel viewport
// fed to the board sizing. One terminal line holds two board rows via
// half-block glyphs, so the vertical budget is doubled.
const tuiScale = 20

var (
	tuiFieldColor = tcell.NewRGBColor(28, 30, 38)
	tuiSnakeColor = tcell.NewRGBColor(90, 200, 110)
	tuiHeadColor  = tcell.NewRGBColor(140, 255, 160)
	tuiFoodColor  = tcell.NewRGBColor(220, 60, 60)
	tuiBackColor  = tcell.NewRGBColor(18, 18, 24)
)

// RunTUI plays the game in the terminal. It owns the event loop: a
// ticker fires the fixed-interval tick while running, key events feed
// the direction gate and terminal resizes recompute the board. Blocks
// until the player quits.
func RunTUI(g *game.Game, tick time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	w, h := screen.Size()
	vw, vh := synthViewport(w, h)
	g.Resize(vw, vh, 1)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				tw, th := ev.Size()
				vw, vh := synthViewport(tw, th)
				g.Resize(vw, vh, 1)
				screen.Sync()
			case *tcell.EventKey:
				if handleTUIKey(g, ev) {
					close(quit)
					return nil
				}
			}
		case <-ticker.C:
			if g.Status() == manager.StatusRunning {
				g.Tick()
			}
		}

		drawTUI(screen, g)
	}
}

// synthViewport maps a terminal size onto the pixel viewport the board
// sizing expects. The top line is reserved for the HUD.
func synthViewport(termW, termH int) (int, int) {
	if termH < 2 {
		termH = 2
	}
	return termW * tuiScale, (termH - 1) * 2 * tuiScale
}

// handleTUIKey maps keys onto the core API. Returns true on quit.
func handleTUIKey(g *game.Game, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		g.Start()
	case tcell.KeyUp:
		g.RequestDirection(types.Up)
	case tcell.KeyDown:
		g.RequestDirection(types.Down)
	case tcell.KeyLeft:
		g.RequestDirection(types.Left)
	case tcell.KeyRight:
		g.RequestDirection(types.Right)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case ' ':
			g.Start()
		case 'w', 'k':
			g.RequestDirection(types.Up)
		case 's', 'j':
			g.RequestDirection(types.Down)
		case 'a', 'h':
			g.RequestDirection(types.Left)
		case 'd', 'l':
			g.RequestDirection(types.Right)
		}
	}
	return false
}

// drawTUI renders a frame with half-block glyphs: each terminal cell
// shows two board rows, foreground on top, background below. Boards
// wider than the terminal are cropped; the minimum 12x12 grid always
// fits anything playable.
func drawTUI(screen tcell.Screen, g *game.Game) {
	screen.Fill(' ', tcell.StyleDefault.Background(tuiBackColor))

	w, h := screen.Size()
	drawHUDLine(screen, g, w)

	board := g.Board()
	if !board.Sized() {
		screen.Show()
		return
	}

	// Per-cell colors, then fold row pairs into glyphs.
	colors := make([][]tcell.Color, board.Rows)
	for y := range colors {
		colors[y] = make([]tcell.Color, board.Cols)
		for x := range colors[y] {
			colors[y][x] = tuiFieldColor
		}
	}
	food := g.Food()
	if board.Contains(food) {
		colors[food.Y][food.X] = tuiFoodColor
	}
	for i, p := range g.SnakeBody() {
		if !board.Contains(p) {
			continue
		}
		if i == 0 {
			colors[p.Y][p.X] = tuiHeadColor
		} else {
			colors[p.Y][p.X] = tuiSnakeColor
		}
	}

	lines := (board.Rows + 1) / 2
	offsetX := (w - board.Cols) / 2
	if offsetX < 0 {
		offsetX = 0
	}
	offsetY := 1 + (h-1-lines)/2
	if offsetY < 1 {
		offsetY = 1
	}

	for sy := 0; sy < lines; sy++ {
		row := offsetY + sy
		if row >= h {
			break
		}
		for x := 0; x < board.Cols; x++ {
			col := offsetX + x
			if col >= w {
				break
			}
			top := colors[2*sy][x]
			bottom := tuiBackColor
			if 2*sy+1 < board.Rows {
				bottom = colors[2*sy+1][x]
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(col, row, '▀', nil, style)
		}
	}

	screen.Show()
}

func drawHUDLine(screen tcell.Screen, g *game.Game, w int) {
	hud := fmt.Sprintf(" Score %d  High %d ", g.Score(), g.HighScore())
	drawText(screen, 0, 0, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tuiBackColor), hud)

	var banner string
	switch g.Status() {
	case manager.StatusReady:
		banner = "press space to start"
	case manager.StatusGameOver:
		banner = "game over - press space"
	default:
		return
	}
	drawText(screen, w-len(banner)-1, 0,
		tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tuiBackColor), banner)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		if x+i < 0 {
			continue
		}
		screen.SetContent(x+i, y, r, nil, style)
	}
}
