package get_available_times

import "time"

// Request модель запроса доступного времени
type Request struct {
	HairdresserID string    // ID парикмахера
	TreatmentID   int64     // ID процедуры (определяет длительность слота)
	Date          time.Time // День, на который запрашиваются слоты (без времени)
}

// Response модель ответа со свободным временем
type Response struct {
	HairdresserID string      // ID парикмахера
	TreatmentID   int64       // ID процедуры
	Date          time.Time   // Запрошенный день
	Times         []time.Time // Упорядоченные времена начала свободных слотов
}
