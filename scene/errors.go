package scene

import "errors"

var (
	ErrLoopOutOfRange    = errors.New("loop index out of range")
	ErrVertexOutOfRange  = errors.New("vertex index out of range")
	ErrLayerExists       = errors.New("color layer already exists")
	ErrLayerNotFound     = errors.New("color layer not found")
	ErrUnknownNodeType   = errors.New("unknown node type")
	ErrSocketNotFound    = errors.New("socket not found")
	ErrNodeNotInTree     = errors.New("node does not belong to this tree")
	ErrInvalidLink       = errors.New("links must go from an output to an input")
	ErrDegeneratePolygon = errors.New("polygon needs at least three vertices")
)
