package bookings

import (
	"context"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/booking"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByIDWithDetails(ctx context.Context, bookingID int64, customerID string) (*domain.BookingDetails, error)
	GetWeekScheduleWithDetails(ctx context.Context, hairdresserID string, weekStart time.Time) ([]*domain.BookingDetails, error)
	GetMonthlyScheduleWithDetails(ctx context.Context, hairdresserID string, year int, month time.Month) ([]*domain.BookingDetails, error)
	NewUnit() bookingRepo.UnitOfWork
}

// UserDirectory справочник пользователей
type UserDirectory interface {
	GetHairdresser(ctx context.Context, id string) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
