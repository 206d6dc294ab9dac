package agent

import (
	"testing"

	"multiagent/evaluate"
	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func mustParse(t *testing.T, text string) *game.GameState {
	t.Helper()
	gs, err := game.ParseLayout(text)
	require.NoError(t, err)
	return gs
}

func TestParseConfig(t *testing.T) {
	t.Run("strategy with parameters", func(t *testing.T) {
		cfg, err := ParseConfig("alphabeta:depth=3,eval=better")
		require.NoError(t, err)
		require.Equal(t, Config{Strategy: "alphabeta", Depth: 3, Evaluation: "better"}, cfg)
	})

	t.Run("strategy only keeps defaults", func(t *testing.T) {
		cfg, err := ParseConfig("expectimax")
		require.NoError(t, err)
		require.Equal(t, Config{Strategy: "expectimax", Depth: 2, Evaluation: "score"}, cfg)
	})

	t.Run("parameters only use the default strategy", func(t *testing.T) {
		cfg, err := ParseConfig("depth=1,evaluationFunction=betterEvaluationFunction")
		require.NoError(t, err)
		require.Equal(t, Config{Strategy: "minimax", Depth: 1, Evaluation: "betterEvaluationFunction"}, cfg)
	})

	t.Run("round trip through String", func(t *testing.T) {
		want := Config{Strategy: "alphabeta", Depth: 4, Evaluation: "better"}
		cfg, err := ParseConfig(want.String())
		require.NoError(t, err)
		require.Equal(t, want, cfg)
	})

	t.Run("rejecting bad input", func(t *testing.T) {
		for _, config := range []string{
			"minimax:depth=two",
			"minimax:depth=-1",
			"minimax:width=3",
			"mcts:depth=2",
			"minimax:eval=closest",
		} {
			_, err := ParseConfig(config)
			require.Error(t, err, "%q should be rejected", config)
		}
	})
}

func TestNew(t *testing.T) {
	t.Run("invalid config", func(t *testing.T) {
		_, err := New(Config{Strategy: "minimax", Depth: -1, Evaluation: "score"})
		require.Error(t, err)
	})

	t.Run("binding strategy and depth", func(t *testing.T) {
		a, err := New(Config{Strategy: "expectimax", Depth: 3, Evaluation: "better"})
		require.NoError(t, err)
		require.Equal(t, "expectimax", a.Strategy().Name())
		require.Equal(t, 3, a.Depth())
	})
}

func TestSearchAgent(t *testing.T) {
	for _, name := range []string{"minimax", "alphabeta", "expectimax"} {
		t.Run(name+" eats the last food", func(t *testing.T) {
			a, err := New(Config{Strategy: name, Depth: 1, Evaluation: "score"})
			require.NoError(t, err)

			action := a.GetAction(mustParse(t, "%%%%%\n%P.G%\n%%%%%"))

			require.Equal(t, game.East, action)
		})
	}

	t.Run("deterministic across calls", func(t *testing.T) {
		a, err := New(Config{Strategy: "alphabeta", Depth: 2, Evaluation: "better"})
		require.NoError(t, err)
		gs, err := game.LoadLayout("minimaxClassic")
		require.NoError(t, err)

		first := a.GetAction(gs)
		for i := 0; i < 3; i++ {
			require.Equal(t, first, a.GetAction(gs), "Repeated searches should agree")
		}
		require.Contains(t, gs.LegalActions(0), first)
	})

	t.Run("reporting search metrics", func(t *testing.T) {
		a, err := New(Config{Strategy: "minimax", Depth: 1, Evaluation: "score"})
		require.NoError(t, err)

		_, m := a.FindAction(mustParse(t, "%%%%%%\n%P. G%\n%%%%%%"))

		require.Equal(t, "minimax", m.Strategy)
		require.Equal(t, 1, m.Depth)
		require.Positive(t, m.Nodes)
		require.Positive(t, m.Evaluations)
	})

	t.Run("depth zero has no action", func(t *testing.T) {
		collector := metrics.NewCollector()
		strategy := searcher.NewMinimax(searcher.WithMetrics(collector))
		a := NewSearchAgent(strategy, 0, collector)

		action, m := a.FindAction(mustParse(t, "%%%%%\n%P.G%\n%%%%%"))

		require.Equal(t, game.NoAction, action)
		require.Equal(t, 1, m.Evaluations)
	})

	t.Run("panics on negative depth", func(t *testing.T) {
		require.Panics(t, func() { NewSearchAgent(searcher.NewMinimax(), -1, nil) })
	})
}

func TestReflexAgent(t *testing.T) {
	t.Run("moving toward food", func(t *testing.T) {
		a := NewReflexAgent(evaluate.Reflex, rand.New(rand.NewSource(1)))

		require.Equal(t, game.East, a.GetAction(mustParse(t, "%%%%%%\n%P .o%\n%%%%%%")))
	})

	t.Run("breaking ties at random", func(t *testing.T) {
		gs := mustParse(t, "%%%%%\n%.P.%\n%%%%%")
		seen := map[game.Action]bool{}
		for seed := uint64(0); seed < 50; seed++ {
			a := NewReflexAgent(evaluate.Reflex, rand.New(rand.NewSource(seed)))
			seen[a.GetAction(gs)] = true
		}

		require.Equal(t, map[game.Action]bool{game.East: true, game.West: true}, seen, "Only the tied best actions should be picked")
	})
}

func TestRandomAgent(t *testing.T) {
	gs := mustParse(t, "%%%%%%%\n%P.G..%\n%%%%%%%")
	a := NewRandomAgent(1, rand.New(rand.NewSource(3)))

	seen := map[game.Action]bool{}
	for i := 0; i < 50; i++ {
		action := a.GetAction(gs)
		require.Contains(t, gs.LegalActions(1), action)
		seen[action] = true
	}
	require.Len(t, seen, 2, "Both directions should be drawn")
}
