package agent

import (
	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/searcher"
)

type Agent interface {
	// GetAction returns the action to take from state
	GetAction(state game.State) game.Action
}

type SearchAgent struct {
	strategy  searcher.Strategy
	depth     int
	collector metrics.Collector
}

// NewSearchAgent returns an agent that picks the root action of a full-window
// search from agent 0. collector must be the one the strategy reports to.
func NewSearchAgent(strategy searcher.Strategy, depth int, collector metrics.Collector) *SearchAgent {
	if depth < 0 {
		panic("search depth must not be negative")
	}
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return &SearchAgent{strategy: strategy, depth: depth, collector: collector}
}

func (a *SearchAgent) GetAction(state game.State) game.Action {
	action, _ := a.FindAction(state)
	return action
}

// FindAction returns the chosen action and the metrics collected while searching.
func (a *SearchAgent) FindAction(state game.State) (game.Action, metrics.SearchMetric) {
	a.collector.Start(a.strategy.Name(), a.depth)
	action, _ := a.strategy.Search(state, 0, a.depth, searcher.FullWindow())
	return action, a.collector.Complete()
}

func (a *SearchAgent) Depth() int {
	return a.depth
}

func (a *SearchAgent) Strategy() searcher.Strategy {
	return a.strategy
}
