package cycle

import "errors"

var (
	ErrNoAnchors    = errors.New("cycle: anchor table is empty")
	ErrBadTables    = errors.New("cycle: invalid tables")
	ErrInconsistent = errors.New("cycle: anchors disagree under cyclic arithmetic")
)
