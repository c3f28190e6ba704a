package domain

import "time"

// Treatment процедура салона
// Длительность определяет конец бронирования: end = start + Duration()
type Treatment struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
}

// Duration возвращает длительность процедуры
func (t *Treatment) Duration() time.Duration {
	return time.Duration(t.DurationMinutes) * time.Minute
}
