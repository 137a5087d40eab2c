package domain

import "errors"

var (
	// ErrSeatOutOfRange unit or seat does not exist on the watercraft
	ErrSeatOutOfRange = errors.New("unit or seat is out of range")

	// ErrEmptyRange start is not before end
	ErrEmptyRange = errors.New("start time must be before end time")

	// ErrOffGrid start or end is not on a slot boundary
	ErrOffGrid = errors.New("time is not on a slot boundary")

	// ErrOutsideWindow the range leaves the operating window
	ErrOutsideWindow = errors.New("time range is outside operating hours")
)
