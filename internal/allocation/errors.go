package allocation

import "errors"

var (
	// ErrUnknownTable возвращается при назначении столика, отсутствующего в плане зала
	ErrUnknownTable = errors.New("allocation: unknown table")

	// ErrInsufficientCapacity возвращается, когда вместимость набора столиков меньше размера группы
	ErrInsufficientCapacity = errors.New("allocation: insufficient table capacity")

	// ErrExcessiveCapacity возвращается, когда вместимость превышает размер группы плюс допустимый запас
	ErrExcessiveCapacity = errors.New("allocation: excessive table capacity")
)
