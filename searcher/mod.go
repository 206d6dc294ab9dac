package searcher

import (
	"fmt"
	"math"

	"multiagent/evaluate"
	"multiagent/experiments/metrics"
	"multiagent/game"

	"github.com/pkg/errors"
)

// Strategy searches the game tree rooted at state for the given agent and
// remaining depth, returning the chosen action and its backed-up value.
// Actions are NoAction where no move applies (cutoffs and chance nodes).
type Strategy interface {
	Search(state game.State, agent, depth int, bounds Bounds) (game.Action, float64)
	Name() string
}

// Bounds is the alpha-beta window. Strategies without pruning ignore it.
type Bounds struct {
	Alpha float64 // Best value the maximizer can already guarantee
	Beta  float64 // Best value the minimizer can already guarantee
}

// FullWindow is the unbounded window searches start from.
func FullWindow() Bounds {
	return Bounds{Alpha: math.Inf(-1), Beta: math.Inf(1)}
}

type Option func(b *base)

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(b *base) {
		if evaluate != nil {
			b.evaluate = evaluate
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(b *base) {
		if collector != nil {
			b.metrics = collector
		}
	}
}

// base holds what every strategy shares. It is never mutated during a search.
type base struct {
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func newBase(options []Option) base {
	b := base{ // Default values
		evaluate: evaluate.Score,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&b)
	}
	return b
}

// leaf evaluates state when the search stops there.
func (b *base) leaf(state game.State, depth int) (float64, bool) {
	if !state.IsWin() && !state.IsLose() && depth > 0 {
		return 0, false
	}
	b.metrics.AddEvaluation()
	return b.evaluate(state), true
}

// expand returns the actions of an inner node, which must have at least one.
func (b *base) expand(state game.State, agent int) []game.Action {
	b.metrics.AddNode()
	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		panic(fmt.Sprintf("agent %d has no legal actions in a non-terminal state", agent))
	}
	return actions
}

// advance returns the agent moving after agent, and the depth left once it
// moves. A ply is complete when the turn wraps back to agent 0.
func advance(state game.State, agent, depth int) (int, int) {
	next := (agent + 1) % state.NumAgents()
	if next == 0 {
		return next, depth - 1
	}
	return next, depth
}

// New returns the strategy registered under name.
func New(name string, options ...Option) (Strategy, error) {
	switch name {
	case "minimax":
		return NewMinimax(options...), nil
	case "alphabeta":
		return NewAlphaBeta(options...), nil
	case "expectimax":
		return NewExpectimax(options...), nil
	default:
		return nil, errors.Errorf("unknown search strategy %q", name)
	}
}
