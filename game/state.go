package game

import (
	"fmt"
	"slices"

	"multiagent/utils"
)

const (
	SCARED_TIME     = 40  // Moves ghosts stay scared after a capsule is eaten
	TIME_PENALTY    = 1   // Points lost per pacman move
	FOOD_REWARD     = 10  // Points per food eaten
	WIN_REWARD      = 500 // Points for eating the last food
	LOSE_PENALTY    = 500 // Points lost when caught by a ghost
	GHOST_EAT_SCORE = 200 // Points for eating a scared ghost
)

// Ghost is the dynamic state of one adversary.
type Ghost struct {
	Position    Position
	Start       Position // Where the ghost respawns after being eaten
	Direction   Action   // Last direction moved, Stop before the first move
	ScaredTimer int      // Remaining scared moves, 0 when dangerous
}

// GameState represents one configuration of the grid-pursuit game. Walls are
// shared between states; food and capsules are copied on write.
type GameState struct {
	walls    Grid
	food     Grid
	capsules []Position
	pacman   Position
	ghosts   []Ghost
	score    float64
	win      bool
	lose     bool
}

// NewGameState initializes and returns a new GameState.
func NewGameState(walls, food Grid, capsules []Position, pacman Position, ghosts []Ghost) *GameState {
	return &GameState{
		walls:    walls,
		food:     food,
		capsules: slices.Clone(capsules),
		pacman:   pacman,
		ghosts:   slices.Clone(ghosts),
	}
}

func (gs *GameState) Copy() *GameState {
	return &GameState{
		walls:    gs.walls,    // Walls never change
		food:     gs.food,     // Copied on write
		capsules: gs.capsules, // Copied on write
		pacman:   gs.pacman,
		ghosts:   slices.Clone(gs.ghosts),
		score:    gs.score,
		win:      gs.win,
		lose:     gs.lose,
	}
}

func (gs *GameState) NumAgents() int {
	return 1 + len(gs.ghosts)
}

func (gs *GameState) IsWin() bool  { return gs.win }
func (gs *GameState) IsLose() bool { return gs.lose }

func (gs *GameState) Score() float64 { return gs.score }

func (gs *GameState) PacmanPosition() Position { return gs.pacman }

func (gs *GameState) Food() []Position { return gs.food.List() }

func (gs *GameState) FoodCount() int { return gs.food.Count() }

func (gs *GameState) HasFood(p Position) bool {
	return gs.food.InBounds(p) && gs.food.At(p)
}

func (gs *GameState) Capsules() []Position { return slices.Clone(gs.capsules) }

func (gs *GameState) Ghosts() []Ghost { return slices.Clone(gs.ghosts) }

func (gs *GameState) Walls() Grid { return gs.walls }

// LegalActions returns the legal actions of the given agent, none once the game is over.
func (gs *GameState) LegalActions(agent int) []Action {
	gs.checkAgent(agent)
	if gs.win || gs.lose {
		return nil
	}
	if agent == 0 {
		return gs.pacmanActions()
	}
	return gs.ghostActions(agent - 1)
}

func (gs *GameState) pacmanActions() []Action {
	actions := gs.openDirections(gs.pacman)
	return append(actions, Stop)
}

// ghostActions never includes Stop, and reverses only when there is no other way.
func (gs *GameState) ghostActions(ghost int) []Action {
	g := gs.ghosts[ghost]
	actions := gs.openDirections(g.Position)
	reverse := g.Direction.Reverse()
	if len(actions) > 1 && reverse != Stop {
		if i := slices.Index(actions, reverse); i >= 0 {
			actions = slices.Delete(actions, i, i+1)
		}
	}
	if len(actions) == 0 { // Boxed in
		return []Action{Stop}
	}
	return actions
}

func (gs *GameState) openDirections(p Position) []Action {
	actions := make([]Action, 0, len(Directions)+1)
	for _, direction := range Directions {
		if !gs.walls.At(p.Move(direction)) {
			actions = append(actions, direction)
		}
	}
	return actions
}

// Successor returns the state after the given agent takes the action.
func (gs *GameState) Successor(agent int, action Action) State {
	gs.checkAgent(agent)
	if gs.win || gs.lose {
		panic("cannot generate a successor of a terminal state")
	}
	if !slices.Contains(gs.LegalActions(agent), action) {
		panic(fmt.Sprintf("illegal action %q for agent %d", action, agent))
	}

	next := gs.Copy()
	if agent == 0 {
		next.movePacman(action)
		for i := range next.ghosts {
			next.checkCollision(i)
		}
	} else {
		next.moveGhost(agent-1, action)
		next.checkCollision(agent - 1)
	}
	return next
}

func (gs *GameState) movePacman(action Action) {
	gs.pacman = gs.pacman.Move(action)
	gs.score -= TIME_PENALTY

	// Eat food
	if gs.food.At(gs.pacman) {
		gs.food = gs.food.Copy()
		gs.food.Set(gs.pacman, false)
		gs.score += FOOD_REWARD
		if gs.food.Count() == 0 && !gs.lose {
			gs.score += WIN_REWARD
			gs.win = true
		}
	}

	// Eat capsule
	if i := utils.FindIndex(gs.capsules, gs.pacman); i >= 0 {
		gs.capsules = slices.Delete(slices.Clone(gs.capsules), i, i+1)
		for g := range gs.ghosts {
			gs.ghosts[g].ScaredTimer = SCARED_TIME
		}
	}
}

func (gs *GameState) moveGhost(ghost int, action Action) {
	g := &gs.ghosts[ghost]
	g.Position = g.Position.Move(action)
	g.Direction = action
	if g.ScaredTimer > 0 {
		g.ScaredTimer--
	}
}

func (gs *GameState) checkCollision(ghost int) {
	g := &gs.ghosts[ghost]
	if g.Position != gs.pacman {
		return
	}
	if g.ScaredTimer > 0 {
		gs.score += GHOST_EAT_SCORE
		g.Position = g.Start
		g.Direction = Stop
		g.ScaredTimer = 0
		return
	}
	if !gs.win {
		gs.score -= LOSE_PENALTY
		gs.lose = true
	}
}

func (gs *GameState) checkAgent(agent int) {
	if agent < 0 || agent >= gs.NumAgents() {
		panic(fmt.Sprintf("agent index %d out of range [0, %d)", agent, gs.NumAgents()))
	}
}
