package get_available_times

import (
	"context"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Find(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
}

// UserDirectory справочник пользователей
type UserDirectory interface {
	GetHairdresser(ctx context.Context, id string) (*domain.User, error)
}

// TreatmentCatalog каталог процедур
type TreatmentCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Treatment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
