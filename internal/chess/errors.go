package chess

import "errors"

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrNoPiece     = errors.New("no piece at origin")
)
