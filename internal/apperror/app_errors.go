package apperror

import "errors"

var (
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameOver     = errors.New("game is over")
	ErrInvalidCell  = errors.New("invalid cell index")
)
