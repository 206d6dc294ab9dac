package pathfind

import (
	"math"

	"multiagent/game"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// Finder computes the length of the shortest path between two open cells of a
// wall grid. ok is false when to cannot be reached from from.
type Finder interface {
	PathLength(walls game.Grid, from, to game.Position) (length int, ok bool)
}

// FinderFunc adapts a plain function to the Finder interface.
type FinderFunc func(walls game.Grid, from, to game.Position) (int, bool)

func (f FinderFunc) PathLength(walls game.Grid, from, to game.Position) (int, bool) {
	return f(walls, from, to)
}

var (
	BFS   Finder = FinderFunc(breadthFirst)
	AStar Finder = FinderFunc(aStar)
)

func breadthFirst(walls game.Grid, from, to game.Position) (int, bool) {
	if from == to {
		return 0, true
	}
	if !walls.InBounds(from) || !walls.InBounds(to) {
		return 0, false
	}
	g := gridGraph{walls: walls}
	length := -1
	var bf traverse.BreadthFirst
	bf.Walk(g, g.node(from), func(n graph.Node, depth int) bool {
		if n.ID() == g.id(to) {
			length = depth
			return true
		}
		return false
	})
	return length, length >= 0
}

// aStar uses the Manhattan distance, which never overestimates on a 4-connected grid.
func aStar(walls game.Grid, from, to game.Position) (int, bool) {
	if from == to {
		return 0, true
	}
	if !walls.InBounds(from) || !walls.InBounds(to) {
		return 0, false
	}
	g := gridGraph{walls: walls}
	shortest, _ := path.AStar(g.node(from), g.node(to), g, g.HeuristicCost)
	weight := shortest.WeightTo(g.id(to))
	if math.IsInf(weight, 1) {
		return 0, false
	}
	return int(weight), true
}

// gridGraph exposes a wall grid as an unweighted directed graph with an edge
// from every cell to each open orthogonal neighbor. Node IDs are row-major
// cell indices.
type gridGraph struct {
	walls game.Grid
}

func (g gridGraph) id(p game.Position) int64 {
	return int64(p.Y*g.walls.Width() + p.X)
}

func (g gridGraph) node(p game.Position) graph.Node {
	return simple.Node(g.id(p))
}

func (g gridGraph) position(id int64) game.Position {
	width := int64(g.walls.Width())
	return game.Position{X: int(id % width), Y: int(id / width)}
}

func (g gridGraph) From(id int64) graph.Nodes {
	p := g.position(id)
	nodes := make([]graph.Node, 0, len(game.Directions))
	for _, direction := range game.Directions {
		if next := p.Move(direction); !g.walls.At(next) {
			nodes = append(nodes, g.node(next))
		}
	}
	return iterator.NewOrderedNodes(nodes)
}

func (g gridGraph) Edge(uid, vid int64) graph.Edge {
	u, v := g.position(uid), g.position(vid)
	if g.walls.At(v) || game.ManhattanDistance(u, v) != 1 {
		return nil
	}
	return simple.Edge{F: simple.Node(uid), T: simple.Node(vid)}
}

func (g gridGraph) HeuristicCost(x, y graph.Node) float64 {
	return float64(game.ManhattanDistance(g.position(x.ID()), g.position(y.ID())))
}
