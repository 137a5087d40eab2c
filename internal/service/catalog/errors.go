package catalog

import "errors"

var (
	// ErrWatercraftNotFound возвращается, когда тип плавсредства не найден
	ErrWatercraftNotFound = errors.New("watercraft not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog.service: internal error")
)
