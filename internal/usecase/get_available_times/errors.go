package get_available_times

import "errors"

var (
	// ErrHairdresserNotFound возвращается, когда парикмахер не найден
	ErrHairdresserNotFound = errors.New("get_available_times: hairdresser not found")

	// ErrTreatmentNotFound возвращается, когда процедура не найдена
	ErrTreatmentNotFound = errors.New("get_available_times: treatment not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_times: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_times: internal error")
)
