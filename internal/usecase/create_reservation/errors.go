package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (в т.ч. пустое имя)
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrWatercraftNotFound возвращается, когда тип плавсредства не найден
	ErrWatercraftNotFound = errors.New("create_reservation: watercraft not found")

	// ErrDateNotBookable возвращается, когда на дату нельзя бронировать
	ErrDateNotBookable = errors.New("create_reservation: date is not bookable")

	// ErrConflict возвращается при конфликте места или клиента
	// Конкретная причина доступна через errors.As (*conflicts.SeatConflictError, *conflicts.CustomerConflictError)
	ErrConflict = errors.New("create_reservation: reservation conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
