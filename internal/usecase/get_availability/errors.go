package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrWatercraftNotFound возвращается, когда тип плавсредства не найден
	ErrWatercraftNotFound = errors.New("get_availability: watercraft not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
