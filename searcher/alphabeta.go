package searcher

import (
	"math"

	"multiagent/game"
)

// AlphaBeta returns the same values as Minimax while skipping subtrees that
// cannot change the decision at the root.
type AlphaBeta struct {
	base
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{base: newBase(options)}
}

func (ab *AlphaBeta) Name() string {
	return "alphabeta"
}

func (ab *AlphaBeta) Search(state game.State, agent, depth int, bounds Bounds) (game.Action, float64) {
	if value, ok := ab.leaf(state, depth); ok {
		return game.NoAction, value
	}
	if agent == 0 {
		return ab.max(state, agent, depth, bounds)
	}
	return ab.min(state, agent, depth, bounds)
}

func (ab *AlphaBeta) max(state game.State, agent, depth int, bounds Bounds) (game.Action, float64) {
	actions := ab.expand(state, agent)
	nextAgent, nextDepth := advance(state, agent, depth)

	best, bestValue := actions[0], math.Inf(-1)
	for _, action := range actions {
		_, value := ab.Search(state.Successor(agent, action), nextAgent, nextDepth, bounds)
		if value > bestValue {
			if value > bounds.Beta {
				ab.metrics.AddPrune()
				return action, value
			}
			best, bestValue = action, value
		}
		bounds.Alpha = math.Max(bounds.Alpha, bestValue)
	}
	return best, bestValue
}

func (ab *AlphaBeta) min(state game.State, agent, depth int, bounds Bounds) (game.Action, float64) {
	actions := ab.expand(state, agent)
	nextAgent, nextDepth := advance(state, agent, depth)

	best, bestValue := actions[0], math.Inf(1)
	for _, action := range actions {
		_, value := ab.Search(state.Successor(agent, action), nextAgent, nextDepth, bounds)
		if value < bestValue {
			if value < bounds.Alpha {
				ab.metrics.AddPrune()
				return action, value
			}
			best, bestValue = action, value
		}
		bounds.Beta = math.Min(bounds.Beta, bestValue)
	}
	return best, bestValue
}
