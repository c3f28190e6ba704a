package book_appointment

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID    string    // ID клиента (из заголовка аутентификации)
	HairdresserID string    // ID парикмахера
	TreatmentID   int64     // ID процедуры
	StartTime     time.Time // Время начала; конец вычисляется из длительности процедуры
	Message       *string   // Сообщение парикмахеру (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64     // ID созданного бронирования
	CustomerID    string    // ID клиента
	HairdresserID string    // ID парикмахера
	TreatmentID   int64     // ID процедуры
	StartTime     time.Time // Время начала
	EndTime       time.Time // Время окончания
	Message       *string   // Сообщение

	// Денормализованные данные процедуры
	TreatmentName  string
	TreatmentPrice float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
