package main

import (
	"flag"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/ui"
)

func main() {
	speed := flag.Int("speed", int(types.DefaultTickInterval/time.Millisecond), "tick period in milliseconds")
	tui := flag.Bool("tui", false, "play in the terminal instead of a window")
	autopilot := flag.Bool("autopilot", false, "let the DQN agent play")
	train := flag.Bool("train", false, "train the agent headless and exit")
	episodes := flag.Int("episodes", 1000, "training episodes with -train")
	flag.Parse()

	g := game.NewGame(manager.DefaultStatsPath, 0)
	tick := time.Duration(*speed) * time.Millisecond

	if *train {
		Train(g, *episodes)
		return
	}

	if *tui {
		if err := ui.RunTUI(g, tick); err != nil {
			log.Fatal(err)
		}
		return
	}

	rl.InitWindow(1280, 800, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	dpi := rl.GetWindowScaleDPI()
	g.Resize(rl.GetScreenWidth(), rl.GetScreenHeight(), float64(dpi.X))

	var pilot *SnakeAgent
	if *autopilot {
		pilot = NewSnakeAgent(g)
	}

	renderer := ui.NewRenderer()
	lastTick := time.Now()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			dpi := rl.GetWindowScaleDPI()
			g.Resize(rl.GetScreenWidth(), rl.GetScreenHeight(), float64(dpi.X))
		}

		handleInput(g, pilot)

		// One state transition per fixed interval, only while running.
		if g.Status() == manager.StatusRunning && time.Since(lastTick) >= tick {
			if pilot != nil {
				pilot.Step()
			} else {
				g.Tick()
			}
			lastTick = time.Now()
		}

		if pilot != nil && g.Status() == manager.StatusGameOver {
			pilot.OnEpisodeEnd()
			g.Start()
		}

		renderer.Draw(g)
	}

	if pilot != nil {
		if err := pilot.SaveWeights(); err != nil {
			log.Printf("error saving weights: %v", err)
		}
	}
}

// handleInput maps keys onto the core API: arrows or WASD steer, space
// or enter starts a run. Steering is ignored under autopilot.
func handleInput(g *game.Game, pilot *SnakeAgent) {
	if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEnter) {
		g.Start()
	}
	if pilot != nil {
		return
	}

	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		g.RequestDirection(types.Up)
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		g.RequestDirection(types.Down)
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		g.RequestDirection(types.Left)
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		g.RequestDirection(types.Right)
	}
}
