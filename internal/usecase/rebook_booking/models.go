package rebook_booking

import "time"

// Request модель запроса на перенос бронирования
// Семантика - атомарные отмена и новое бронирование: интервал обновляется
// на месте, ID бронирования сохраняется
type Request struct {
	CustomerID  string    // ID клиента-владельца
	BookingID   int64     // ID переносимого бронирования
	TreatmentID *int64    // Новая процедура (nil - оставить прежнюю)
	StartTime   time.Time // Новое время начала
	Message     *string   // Новое сообщение (nil - оставить прежнее)
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID            int64
	CustomerID    string
	HairdresserID string
	TreatmentID   int64
	StartTime     time.Time
	EndTime       time.Time
	Message       *string

	TreatmentName  string
	TreatmentPrice float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
