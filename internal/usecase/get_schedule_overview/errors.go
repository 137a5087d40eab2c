package get_schedule_overview

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_schedule_overview: internal error")
)
