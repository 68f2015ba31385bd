package pathfind

import "errors"

// Sentinel errors returned by the search functions.
var (
	// ErrOutOfBounds is returned when a start or goal key is not a cell of the grid.
	ErrOutOfBounds = errors.New("pathfind: key out of bounds")

	// ErrCostMapSize is returned when the cost map does not cover the grid exactly.
	ErrCostMapSize = errors.New("pathfind: cost map size does not match grid area")

	// ErrNegativeCost is returned when the cost map holds a negative entry.
	ErrNegativeCost = errors.New("pathfind: negative move cost")

	// ErrCorruptPredecessors is returned when a predecessor chain does not
	// reach its origin within the grid area.
	ErrCorruptPredecessors = errors.New("pathfind: predecessor chain does not terminate")
)
