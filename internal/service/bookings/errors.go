package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrHairdresserNotFound возвращается, когда парикмахер не найден
	ErrHairdresserNotFound = errors.New("hairdresser not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит
	// другому клиенту
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
