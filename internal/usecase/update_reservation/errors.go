package update_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец и не администратор
	ErrAccessDenied = errors.New("update_reservation: access denied")

	// ErrWatercraftNotFound возвращается, когда тип плавсредства не найден
	ErrWatercraftNotFound = errors.New("update_reservation: watercraft not found")

	// ErrDateNotBookable возвращается, когда на дату нельзя бронировать
	ErrDateNotBookable = errors.New("update_reservation: date is not bookable")

	// ErrConflict возвращается при конфликте места или клиента
	ErrConflict = errors.New("update_reservation: reservation conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
