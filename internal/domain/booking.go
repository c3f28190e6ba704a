package domain

import "time"

// Booking запись бронирования: клиент бронирует процедуру у парикмахера
// Интервал [StartTime, EndTime) полуоткрытый: бронирования, граничащие
// по времени, не конфликтуют
type Booking struct {
	ID            int64
	CustomerID    string
	HairdresserID string
	TreatmentID   int64
	StartTime     time.Time
	EndTime       time.Time
	Message       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overlaps проверяет пересечение интервала бронирования с [start, end)
// Строгие неравенства: граничащие интервалы не считаются пересечением
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

// Duration возвращает длительность бронирования
func (b *Booking) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}

// BelongsTo проверяет, принадлежит ли бронирование клиенту
func (b *Booking) BelongsTo(customerID string) bool {
	return b.CustomerID == customerID
}

// BookingDetails бронирование вместе со связанными сущностями
// Заполняется репозиторием явным JOIN'ом, ленивых связей нет
type BookingDetails struct {
	Booking
	Customer    User
	Hairdresser User
	Treatment   Treatment
}

// BookingFilter фильтр выборки бронирований
// Все поля опциональны: nil означает отсутствие ограничения
type BookingFilter struct {
	CustomerID    *string
	HairdresserID *string
	TreatmentID   *int64
	// Окно пересечения интервалов: выбираются бронирования, чей интервал
	// пересекает [From, To)
	From *time.Time
	To   *time.Time
	// ExcludeID исключает бронирование из выборки (используется при переносе)
	ExcludeID *int64
}

// IsEmpty сообщает, что фильтр не накладывает ограничений
func (f BookingFilter) IsEmpty() bool {
	return f.CustomerID == nil && f.HairdresserID == nil && f.TreatmentID == nil &&
		f.From == nil && f.To == nil && f.ExcludeID == nil
}
