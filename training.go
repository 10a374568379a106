package main

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/manager"
)

// maxEpisodeSteps cuts off an episode whose policy has settled into a
// safe loop that never eats.
const maxEpisodeSteps = 10000

// Train runs headless training episodes on a fixed synthetic viewport
// and saves the weights periodically.
func Train(g *game.Game, episodes int) {
	g.Resize(1024, 768, 1)
	pilot := NewSnakeAgent(g)

	bestScore := 0
	totalScore := 0

	for episode := 0; episode < episodes; episode++ {
		g.Start()

		for steps := 0; g.Status() == manager.StatusRunning && steps < maxEpisodeSteps; steps++ {
			pilot.Step()
		}
		g.Abort()

		score := g.Score()
		totalScore += score
		if score > bestScore {
			bestScore = score
		}
		pilot.OnEpisodeEnd()

		if (episode+1)%50 == 0 {
			fmt.Printf("episode %d/%d avg=%.2f best=%d high=%d\n",
				episode+1, episodes, float64(totalScore)/50, bestScore, g.HighScore())
			totalScore = 0
		}

		if (episode+1)%500 == 0 {
			if err := pilot.SaveWeights(); err != nil {
				fmt.Printf("error saving weights: %v\n", err)
			}
		}
	}

	if err := pilot.SaveWeights(); err != nil {
		fmt.Printf("error saving weights: %v\n", err)
	}
}
