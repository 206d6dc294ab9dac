package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *GameState {
	t.Helper()
	gs, err := ParseLayout(text)
	require.NoError(t, err)
	return gs
}

func TestParseLayout(t *testing.T) {
	t.Run("reading agents and items", func(t *testing.T) {
		gs := mustParse(t, `
%%%%%%
%P.oG%
%%%%%%`)

		require.Equal(t, Position{1, 1}, gs.PacmanPosition())
		require.Equal(t, []Position{{2, 1}}, gs.Food())
		require.Equal(t, []Position{{3, 1}}, gs.Capsules())
		require.Equal(t, 2, gs.NumAgents(), "Pacman plus one ghost")
		require.Equal(t, Ghost{Position: Position{4, 1}, Start: Position{4, 1}, Direction: Stop}, gs.Ghosts()[0])
		require.True(t, gs.Walls().At(Position{0, 0}))
		require.Equal(t, 0.0, gs.Score())
	})

	t.Run("keeping leading open cells of the first row", func(t *testing.T) {
		gs := mustParse(t, "\n  P\n%%%\n")

		require.Equal(t, Position{2, 0}, gs.PacmanPosition())
		require.Equal(t, 3, gs.Walls().Width())
		require.Equal(t, 2, gs.Walls().Height())
	})

	t.Run("rejecting ragged rows", func(t *testing.T) {
		_, err := ParseLayout("%%%\n%P%%\n%%%")
		require.Error(t, err)
	})

	t.Run("rejecting a layout without pacman", func(t *testing.T) {
		_, err := ParseLayout("%%%\n%.%\n%%%")
		require.Error(t, err)
	})

	t.Run("rejecting unknown characters", func(t *testing.T) {
		_, err := ParseLayout("%%%\n%P#\n%%%")
		require.Error(t, err)
	})

	t.Run("loading every built-in layout", func(t *testing.T) {
		for name := range Layouts {
			gs, err := LoadLayout(name)
			require.NoError(t, err, "Layout %s should parse", name)
			require.Greater(t, gs.NumAgents(), 1, "Layout %s should have ghosts", name)
		}
	})

	t.Run("unknown built-in layout", func(t *testing.T) {
		_, err := LoadLayout("missing")
		require.Error(t, err)
	})
}

func TestFoodEnumeration(t *testing.T) {
	gs := mustParse(t, `
%%%%
%..%
%P.%
%%%%`)

	require.Equal(t, []Position{{1, 1}, {2, 1}, {2, 2}}, gs.Food(), "Food should be listed column by column")
	require.Equal(t, 3, gs.FoodCount())
}

func TestLegalActions(t *testing.T) {
	t.Run("pacman moves into open cells then stops", func(t *testing.T) {
		gs := mustParse(t, `
%%%%%
%   %
% P %
%%%%%`)

		require.Equal(t, []Action{North, East, West, Stop}, gs.LegalActions(0))
	})

	t.Run("ghost never stops nor reverses when it has a choice", func(t *testing.T) {
		gs := mustParse(t, `
%%%%%%
%P   %
%%% %%
%%%G%%
%%%%%%`)
		require.Equal(t, []Action{North}, gs.LegalActions(1), "Boxed ghost can only go north")

		next := gs.Successor(1, North)
		require.Equal(t, []Action{North}, next.LegalActions(1), "Ghost should not reverse south")

		next = next.Successor(1, North)
		require.Equal(t, []Action{East, West}, next.LegalActions(1), "Ghost should turn at the junction")
	})

	t.Run("ghost reverses in a dead end", func(t *testing.T) {
		gs := mustParse(t, `
%%%%%%
%P G %
%%%%%%`)
		require.Equal(t, []Action{East, West}, gs.LegalActions(1))

		next := gs.Successor(1, East)

		require.Equal(t, []Action{West}, next.LegalActions(1), "Ghost in a dead end must reverse")
	})

	t.Run("terminal states have no legal actions", func(t *testing.T) {
		gs := mustParse(t, `
%%%%
%P.%
%%%%`)
		won := gs.Successor(0, East)

		require.True(t, won.IsWin())
		require.Empty(t, won.LegalActions(0))
	})

	t.Run("panics on unknown agent", func(t *testing.T) {
		gs := mustParse(t, `
%%%%
%P.%
%%%%`)
		require.Panics(t, func() { gs.LegalActions(1) })
	})
}

func TestSuccessor(t *testing.T) {
	t.Run("leaving the original state untouched", func(t *testing.T) {
		gs := mustParse(t, `
%%%%%%
%P..G%
%%%%%%`)

		next := gs.Successor(0, East).(*GameState)

		require.Equal(t, Position{1, 1}, gs.PacmanPosition(), "Original pacman should not move")
		require.Equal(t, 2, gs.FoodCount(), "Original food should not be eaten")
		require.Equal(t, 0.0, gs.Score())
		require.Equal(t, Position{2, 1}, next.PacmanPosition())
		require.Equal(t, 1, next.FoodCount())
	})

	t.Run("scoring food and time penalty", func(t *testing.T) {
		gs := mustParse(t, `
%%%%%%
%P. G%
%%%%%%`)
		next := gs.Successor(0, East)
		require.Equal(t, float64(FOOD_REWARD-TIME_PENALTY), next.Score())

		stopped := gs.Successor(0, Stop)
		require.Equal(t, float64(-TIME_PENALTY), stopped.Score())
	})

	t.Run("winning by eating the last food", func(t *testing.T) {
		gs := mustParse(t, `
%%%%%%
%P.  %
%%%%G%
%%%%%%`)
		next := gs.Successor(0, East)

		require.True(t, next.IsWin())
		require.False(t, next.IsLose())
		require.Equal(t, float64(FOOD_REWARD+WIN_REWARD-TIME_PENALTY), next.Score())
	})

	t.Run("losing by running into a ghost", func(t *testing.T) {
		gs := mustParse(t, `
%%%%%%
%.PG %
%%%%%%`)
		next := gs.Successor(0, East)

		require.True(t, next.IsLose())
		require.Equal(t, float64(-TIME_PENALTY-LOSE_PENALTY), next.Score())
	})

	t.Run("losing when a ghost moves onto pacman", func(t *testing.T) {
		gs := mustParse(t, `
%%%%%%
%.P G%
%%%%%%`)
		next := gs.Successor(1, West).Successor(1, West)

		require.True(t, next.IsLose())
	})

	t.Run("capsule scares every ghost", func(t *testing.T) {
		gs := mustParse(t, `
%%%%%%%
%Po.G.%
%%%%G%%
%%%%%%%`)
		next := gs.Successor(0, East).(*GameState)

		require.Empty(t, next.Capsules())
		require.Len(t, gs.Capsules(), 1, "Original capsules should not change")
		for _, g := range next.Ghosts() {
			require.Equal(t, SCARED_TIME, g.ScaredTimer)
		}

		moved := next.Successor(1, West).(*GameState)
		require.Equal(t, SCARED_TIME-1, moved.Ghosts()[0].ScaredTimer, "Timer should tick when the ghost moves")
		require.Equal(t, SCARED_TIME, moved.Ghosts()[1].ScaredTimer, "Other timers should not tick")
	})

	t.Run("eating a scared ghost sends it home", func(t *testing.T) {
		ghost := Ghost{Position: Position{3, 1}, Start: Position{4, 1}, Direction: West, ScaredTimer: 5}
		walls := NewGrid(6, 3)
		for x := 0; x < 6; x++ {
			walls.Set(Position{x, 0}, true)
			walls.Set(Position{x, 2}, true)
		}
		walls.Set(Position{0, 1}, true)
		walls.Set(Position{5, 1}, true)
		food := NewGrid(6, 3)
		food.Set(Position{1, 1}, true)
		gs := NewGameState(walls, food, nil, Position{2, 1}, []Ghost{ghost})

		next := gs.Successor(0, East).(*GameState)

		require.False(t, next.IsLose())
		require.Equal(t, float64(GHOST_EAT_SCORE-TIME_PENALTY), next.Score())
		require.Equal(t, Ghost{Position: Position{4, 1}, Start: Position{4, 1}, Direction: Stop}, next.Ghosts()[0])
	})

	t.Run("panics on terminal state", func(t *testing.T) {
		gs := mustParse(t, `
%%%%
%P.%
%%%%`)
		won := gs.Successor(0, East)

		require.Panics(t, func() { won.Successor(0, West) })
	})

	t.Run("panics on illegal action", func(t *testing.T) {
		gs := mustParse(t, `
%%%%
%P.%
%%%%`)
		require.Panics(t, func() { gs.Successor(0, North) })
	})
}

func TestDistances(t *testing.T) {
	require.Equal(t, 7, ManhattanDistance(Position{1, 2}, Position{4, 6}))
	require.InDelta(t, 5.0, EuclideanDistance(Position{1, 2}, Position{4, 6}), 1e-9)
}
