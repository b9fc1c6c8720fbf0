package flowfield

import "errors"

var (
	// ErrInvalidDimensions indicates the input grid is empty or not rectangular.
	ErrInvalidDimensions = errors.New("flowfield: grid must be non-empty and rectangular")
	// ErrInvalidCoordinate indicates an (x, y) pair outside the grid bounds.
	ErrInvalidCoordinate = errors.New("flowfield: coordinate out of bounds")
	// ErrInvalidMovement indicates an unknown Movement value.
	ErrInvalidMovement = errors.New("flowfield: unknown movement mode")
	// ErrNoPath indicates the queried cell was not reached by the current flow field.
	ErrNoPath = errors.New("flowfield: no path to target")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("flowfield: component index out of range")
)
