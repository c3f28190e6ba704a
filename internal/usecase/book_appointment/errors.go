package book_appointment

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("book_appointment: customer not found")

	// ErrHairdresserNotFound возвращается, когда парикмахер не найден
	ErrHairdresserNotFound = errors.New("book_appointment: hairdresser not found")

	// ErrTreatmentNotFound возвращается, когда процедура не найдена
	ErrTreatmentNotFound = errors.New("book_appointment: treatment not found")

	// ErrSlotTaken возвращается, когда запрошенный интервал пересекается
	// с существующим бронированием парикмахера
	ErrSlotTaken = errors.New("book_appointment: time slot is already taken")

	// ErrOutsideWorkingHours возвращается, когда интервал выходит за
	// рабочие часы салона
	ErrOutsideWorkingHours = errors.New("book_appointment: interval is outside working hours")

	// ErrDateInPast возвращается при попытке забронировать время в прошлом
	ErrDateInPast = errors.New("book_appointment: start time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
