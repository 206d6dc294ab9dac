package searcher

import (
	"math"

	"multiagent/game"
)

// Minimax maximizes at agent 0 and minimizes at every adversary.
type Minimax struct {
	base
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{base: newBase(options)}
}

func (m *Minimax) Name() string {
	return "minimax"
}

func (m *Minimax) Search(state game.State, agent, depth int, _ Bounds) (game.Action, float64) {
	if value, ok := m.leaf(state, depth); ok {
		return game.NoAction, value
	}
	actions := m.expand(state, agent)
	nextAgent, nextDepth := advance(state, agent, depth)

	best, bestValue := actions[0], math.Inf(1)
	if agent == 0 {
		bestValue = math.Inf(-1)
	}
	for _, action := range actions {
		_, value := m.Search(state.Successor(agent, action), nextAgent, nextDepth, Bounds{})
		if (agent == 0 && value > bestValue) || (agent != 0 && value < bestValue) {
			best, bestValue = action, value
		}
	}
	return best, bestValue
}
