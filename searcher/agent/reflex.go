package agent

import (
	"multiagent/game"
	"multiagent/utils"

	"golang.org/x/exp/rand"
)

type reflexAgent struct {
	evaluate game.ActionEvaluate
	rng      *rand.Rand
}

// NewReflexAgent returns a pacman agent that scores each legal action with a
// one-step lookahead and picks uniformly among the best.
func NewReflexAgent(evaluate game.ActionEvaluate, rng *rand.Rand) Agent {
	return reflexAgent{evaluate: evaluate, rng: rng}
}

func (a reflexAgent) GetAction(state game.State) game.Action {
	actions := state.LegalActions(0)
	if len(actions) == 0 {
		return game.NoAction
	}
	scores := make([]float64, len(actions))
	for i, action := range actions {
		scores[i] = a.evaluate(state, action)
	}
	best := utils.Indices(scores, scores[utils.ArgMax(scores)])
	return actions[best[a.rng.Intn(len(best))]]
}

type randomAgent struct {
	index int
	rng   *rand.Rand
}

// NewRandomAgent returns an agent choosing uniformly among the legal actions of index.
func NewRandomAgent(index int, rng *rand.Rand) Agent {
	return randomAgent{index: index, rng: rng}
}

func (a randomAgent) GetAction(state game.State) game.Action {
	actions := state.LegalActions(a.index)
	if len(actions) == 0 {
		return game.NoAction
	}
	return actions[a.rng.Intn(len(actions))]
}
