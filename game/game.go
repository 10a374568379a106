// Package game holds the snake simulation: board sizing, movement,
// collision, food placement and the session/score state. It knows
// nothing about windows, keys or timers; adapters drive it through
// Resize, RequestDirection, Start and Tick and read snapshots back.
package game

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// Outcome classifies a single tick.
type Outcome int

const (
	OutcomeMoved Outcome = iota
	OutcomeAte
	OutcomeDied
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeDied:
		return "died"
	default:
		return "unknown"
	}
}

// Game owns all simulation state. A single goroutine drives it; the
// renderers only ever see copies taken between ticks.
type Game struct {
	board   types.Board
	snake   *entity.Snake
	food    types.Point
	current types.Direction
	pending types.Direction

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

// NewGame wires the managers together. The board stays unsized until
// the first Resize; Start is a no-op until then. A zero seed means
// non-deterministic food placement.
func NewGame(statsPath string, seed uint64) *Game {
	return &Game{
		current:      types.Right,
		pending:      types.Right,
		collisionMgr: manager.NewCollisionManager(types.Board{}),
		foodMgr:      manager.NewFoodManager(types.Board{}, seed),
		stateMgr:     manager.NewStateManager(statsPath),
	}
}

// Resize recomputes the board from the viewport and propagates it.
// While ready the demo layout is re-seeded as well; a resize during a
// run deliberately leaves the run alone, so segments may sit outside
// a shrunken grid until the next collision check catches them.
func (g *Game) Resize(viewW, viewH int, scale float64) {
	g.board = types.ComputeBoard(viewW, viewH, scale)
	g.collisionMgr.SetBoard(g.board)
	g.foodMgr.SetBoard(g.board)
	if g.stateMgr.Status() == manager.StatusReady {
		g.seedLayout()
	}
}

// seedLayout places the initial three-segment snake at the board
// center, heading right, and spawns fresh food.
func (g *Game) seedLayout() {
	head := types.Point{X: g.board.Cols / 2, Y: g.board.Rows / 2}
	g.snake = entity.NewSnake(head, types.InitialSnakeLength)
	g.current = types.Right
	g.pending = types.Right
	g.food = g.foodMgr.Spawn(g.snake)
}

// Start begins a run from ready or game over. It is a no-op while a
// run is in progress or before the board has been sized.
func (g *Game) Start() {
	if !g.board.Sized() || g.stateMgr.Status() == manager.StatusRunning {
		return
	}
	g.seedLayout()
	g.stateMgr.StartRun()
}

// RequestDirection queues d to be committed on the next tick. A
// request that would reverse the last committed direction is silently
// dropped; that comparison is against the committed direction only,
// so two rapid inputs can still queue a reversal across two ticks.
// This matches the input-time gate the tick itself relies on.
func (g *Game) RequestDirection(d types.Direction) {
	if d == g.current.Opposite() {
		return
	}
	g.pending = d
}

// Tick advances the snake by one cell and reports what happened.
// Outside the running state it does nothing, which keeps the state
// frozen after game over.
func (g *Game) Tick() Outcome {
	if g.stateMgr.Status() != manager.StatusRunning || g.snake == nil {
		return OutcomeMoved
	}

	g.current = g.pending
	next := g.snake.Head().Add(g.current.Vector())

	// Collision is checked against the body before growth, tail cell
	// included.
	if g.collisionMgr.CheckMove(next, g.snake) != manager.NoCollision {
		g.stateMgr.EndRun()
		return OutcomeDied
	}

	if next == g.food {
		g.snake.Advance(next, true)
		g.stateMgr.AddPoint()
		g.food = g.foodMgr.Spawn(g.snake)
		return OutcomeAte
	}

	g.snake.Advance(next, false)
	return OutcomeMoved
}

// Abort ends a run from outside the tick algorithm, e.g. when the
// trainer cuts off an episode. A no-op unless a run is in progress.
func (g *Game) Abort() {
	g.stateMgr.EndRun()
}

// DangerAt reports whether moving the head into p would end the run.
func (g *Game) DangerAt(p types.Point) bool {
	return g.collisionMgr.CheckMove(p, g.snake) != manager.NoCollision
}

// Board returns the current board metrics.
func (g *Game) Board() types.Board {
	return g.board
}

// SnakeBody returns a copy of the body, head first. Nil before the
// first resize.
func (g *Game) SnakeBody() []types.Point {
	if g.snake == nil {
		return nil
	}
	return g.snake.Segments()
}

// Food returns the current food cell.
func (g *Game) Food() types.Point {
	return g.food
}

// CurrentDirection returns the last committed direction.
func (g *Game) CurrentDirection() types.Direction {
	return g.current
}

func (g *Game) Status() manager.Status { return g.stateMgr.Status() }
func (g *Game) Score() int             { return g.stateMgr.Score() }
func (g *Game) HighScore() int         { return g.stateMgr.HighScore() }
