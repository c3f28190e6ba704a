package rebook_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("rebook_booking: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит
	// другому клиенту
	ErrAccessDenied = errors.New("rebook_booking: access denied")

	// ErrTreatmentNotFound возвращается, когда процедура не найдена
	ErrTreatmentNotFound = errors.New("rebook_booking: treatment not found")

	// ErrSlotTaken возвращается, когда новый интервал пересекается с
	// другим бронированием парикмахера
	ErrSlotTaken = errors.New("rebook_booking: time slot is already taken")

	// ErrOutsideWorkingHours возвращается, когда новый интервал выходит
	// за рабочие часы салона
	ErrOutsideWorkingHours = errors.New("rebook_booking: interval is outside working hours")

	// ErrDateInPast возвращается при попытке перенести бронирование в прошлое
	ErrDateInPast = errors.New("rebook_booking: start time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("rebook_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("rebook_booking: internal error")
)
