// meta/meta.go
package meta

// DEFAULT_DEPTH defines the search depth in full agent cycles.
const DEFAULT_DEPTH = 2

// DEFAULT_EVALUATION names the evaluator bound when none is configured.
const DEFAULT_EVALUATION = "score"

// DEFAULT_STRATEGY names the search strategy bound when none is configured.
const DEFAULT_STRATEGY = "minimax"

// MAX_MOVES caps a single game, counted in individual agent moves.
const MAX_MOVES = 2000
