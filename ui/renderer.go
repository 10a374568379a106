// Package ui holds the rendering and input adapters around the core
// simulation: a raylib window renderer and a tcell terminal front end.
// Both only read snapshots; all mutation goes through the core API.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/manager"
)

var (
	backgroundColor = rl.Color{R: 18, G: 18, B: 24, A: 255}
	fieldColor      = rl.Color{R: 28, G: 30, B: 38, A: 255}
	snakeColor      = rl.Color{R: 90, G: 200, B: 110, A: 255}
	headColor       = rl.Color{R: 140, G: 255, B: 160, A: 255}
	foodColor       = rl.Red
)

// Renderer draws the game into the raylib window.
type Renderer struct {
	offsetX int32
	offsetY int32
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw renders one frame from read-only snapshots.
func (r *Renderer) Draw(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	board := g.Board()
	if board.Sized() {
		cell := int32(board.Cell)
		r.offsetX = (int32(rl.GetScreenWidth()) - int32(board.Width)) / 2
		r.offsetY = (int32(rl.GetScreenHeight()) - int32(board.Height)) / 2

		rl.DrawRectangle(r.offsetX-1, r.offsetY-1, int32(board.Width)+2, int32(board.Height)+2, rl.DarkGray)
		rl.DrawRectangle(r.offsetX, r.offsetY, int32(board.Width), int32(board.Height), fieldColor)

		food := g.Food()
		rl.DrawRectangle(
			r.offsetX+int32(food.X)*cell,
			r.offsetY+int32(food.Y)*cell,
			cell, cell, foodColor)

		for i, p := range g.SnakeBody() {
			color := snakeColor
			if i == 0 {
				color = headColor
			}
			rl.DrawRectangle(
				r.offsetX+int32(p.X)*cell,
				r.offsetY+int32(p.Y)*cell,
				cell, cell, color)
		}
	}

	r.drawHUD(g)
	rl.EndDrawing()
}

func (r *Renderer) drawHUD(g *game.Game) {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	fontSize := screenH / 40
	if fontSize < 14 {
		fontSize = 14
	}

	score := fmt.Sprintf("Score: %d", g.Score())
	high := fmt.Sprintf("High: %d", g.HighScore())
	rl.DrawText(score, 10, 10, fontSize, rl.White)
	rl.DrawText(high, 10, 14+fontSize, fontSize, rl.LightGray)

	var banner string
	switch g.Status() {
	case manager.StatusReady:
		banner = "PRESS SPACE TO START"
	case manager.StatusGameOver:
		banner = "GAME OVER - PRESS SPACE"
	default:
		return
	}

	bannerSize := fontSize * 2
	textWidth := rl.MeasureText(banner, bannerSize)
	rl.DrawText(banner, (screenW-textWidth)/2, screenH/2-bannerSize/2, bannerSize, rl.Yellow)
}
