package engine

import (
	"multiagent/experiments/metrics"
	"multiagent/game"
)

type Engine interface {
	// Run plays a game till it is won or lost or a max number of moves is reached
	Run() (final game.State, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
