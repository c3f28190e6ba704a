package get_month_schedule

import (
	"context"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetMonthSchedule(ctx context.Context, hairdresserID string, year int, month time.Month) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
