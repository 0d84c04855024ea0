package scheduling

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных планировщика
	ErrInvalidInput = errors.New("scheduling: invalid input data")
)
