package searcher

import (
	"math"

	"multiagent/game"
)

// Expectimax maximizes at agent 0 and models every adversary as choosing
// uniformly at random among its legal actions.
type Expectimax struct {
	base
}

func NewExpectimax(options ...Option) *Expectimax {
	return &Expectimax{base: newBase(options)}
}

func (e *Expectimax) Name() string {
	return "expectimax"
}

func (e *Expectimax) Search(state game.State, agent, depth int, _ Bounds) (game.Action, float64) {
	if value, ok := e.leaf(state, depth); ok {
		return game.NoAction, value
	}
	actions := e.expand(state, agent)
	nextAgent, nextDepth := advance(state, agent, depth)

	if agent != 0 {
		// Chance node
		total := 0.0
		for _, action := range actions {
			_, value := e.Search(state.Successor(agent, action), nextAgent, nextDepth, Bounds{})
			total += value
		}
		return game.NoAction, total / float64(len(actions))
	}

	best, bestValue := actions[0], math.Inf(-1)
	for _, action := range actions {
		_, value := e.Search(state.Successor(agent, action), nextAgent, nextDepth, Bounds{})
		if value > bestValue {
			best, bestValue = action, value
		}
	}
	return best, bestValue
}
