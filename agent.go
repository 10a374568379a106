package main

import (
	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/qlearning"
)

// SnakeAgent lets the DQN play the game. Actions are relative to the
// current heading (turn left, straight, turn right), so the agent can
// never emit the reversal the input gate would drop anyway.
type SnakeAgent struct {
	agent *qlearning.Agent
	game  *game.Game
}

// NewSnakeAgent creates the autopilot for g, resuming saved weights
// when present.
func NewSnakeAgent(g *game.Game) *SnakeAgent {
	return &SnakeAgent{
		agent: qlearning.NewAgent(0.5, 0.8, 0.95),
		game:  g,
	}
}

// state encodes what the agent sees: four food-direction flags in
// absolute axes plus danger flags for the three cells it could move
// into.
func (sa *SnakeAgent) state() []float64 {
	g := sa.game
	body := g.SnakeBody()
	features := make([]float64, qlearning.InputFeatures)
	if len(body) == 0 {
		return features
	}

	head := body[0]
	food := g.Food()
	if food.X < head.X {
		features[0] = 1
	}
	if food.X > head.X {
		features[1] = 1
	}
	if food.Y < head.Y {
		features[2] = 1
	}
	if food.Y > head.Y {
		features[3] = 1
	}

	cur := g.CurrentDirection()
	for i, d := range []types.Direction{cur.TurnLeft(), cur, cur.TurnRight()} {
		if g.DangerAt(head.Add(d.Vector())) {
			features[4+i] = 1
		}
	}

	return features
}

// relativeActionToAbsolute maps an action index to a direction:
// 0 turns left, 1 keeps the heading, 2 turns right.
func (sa *SnakeAgent) relativeActionToAbsolute(action int) types.Direction {
	cur := sa.game.CurrentDirection()
	switch action {
	case 0:
		return cur.TurnLeft()
	case 2:
		return cur.TurnRight()
	default:
		return cur
	}
}

// Step performs one decision, advances the game a tick and feeds the
// result back into the network.
func (sa *SnakeAgent) Step() {
	g := sa.game
	if g.Status() != manager.StatusRunning {
		return
	}

	state := sa.state()
	action := sa.agent.GetAction(state, qlearning.OutputActions)

	head := g.SnakeBody()[0]
	before := manhattanDistance(head, g.Food())

	g.RequestDirection(sa.relativeActionToAbsolute(action))
	outcome := g.Tick()

	var reward float64
	switch outcome {
	case game.OutcomeAte:
		reward = 1.0
	case game.OutcomeDied:
		reward = -1.0
	default:
		after := manhattanDistance(g.SnakeBody()[0], g.Food())
		if after < before {
			reward = 0.5
		} else if after > before {
			reward = -0.3
		}
	}

	sa.agent.Update(state, action, reward, sa.state(), qlearning.OutputActions)
}

// OnEpisodeEnd advances the epsilon-decay schedule after a death.
func (sa *SnakeAgent) OnEpisodeEnd() {
	sa.agent.IncrementEpisode()
}

// SaveWeights persists the network for the next session.
func (sa *SnakeAgent) SaveWeights() error {
	return sa.agent.SaveWeights(qlearning.WeightsFile)
}

func manhattanDistance(a, b types.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
