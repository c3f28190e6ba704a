package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/booking"
	userRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/user"
	"github.com/m04kA/Salon-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: чтение с проверкой
// владельца, отмена и календарные представления расписания
type Service struct {
	bookingRepo BookingRepository
	users       UserDirectory
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	users UserDirectory,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		users:       users,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование со связанными сущностями
// Клиент видит только собственные бронирования: чужое дает ErrAccessDenied,
// отсутствующее - ErrBookingNotFound
func (s *Service) GetByID(ctx context.Context, bookingID int64, customerID string) (*models.BookingDetailsResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for customer=%s", bookingID, customerID)

	// Сначала различаем "нет записи" и "чужая запись"
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !booking.BelongsTo(customerID) {
		s.logger.Warn("GetByID: access denied for customer=%s to booking id=%d", customerID, bookingID)
		return nil, ErrAccessDenied
	}

	details, err := s.bookingRepo.GetByIDWithDetails(ctx, bookingID, customerID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", bookingID)
	return models.FromDomainDetails(details), nil
}

// Cancel отменяет бронирование клиента
// Отмена терминальна: строка удаляется из хранилища; возвращается
// снимок удаленного бронирования
func (s *Service) Cancel(ctx context.Context, customerID string, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by customer=%s", bookingID, customerID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.BelongsTo(customerID) {
		s.logger.Warn("Cancel: access denied for customer=%s to booking id=%d", customerID, bookingID)
		return nil, ErrAccessDenied
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		unit := s.bookingRepo.NewUnit()
		unit.Delete(booking)
		return unit.Save(txCtx)
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d disappeared during cancellation", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to delete booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return models.FromDomainBooking(booking), nil
}

// GetWeekSchedule получает расписание парикмахера на неделю от weekStart
// Возвращаются бронирования, чей интервал пересекает [weekStart, weekStart+7d)
func (s *Service) GetWeekSchedule(ctx context.Context, hairdresserID string, weekStart time.Time) (*models.ScheduleResponse, error) {
	s.logger.Info("GetWeekSchedule: hairdresser=%s, weekStart=%s",
		hairdresserID, weekStart.Format(domain.DateFormat))

	if err := s.checkHairdresser(ctx, "GetWeekSchedule", hairdresserID); err != nil {
		return nil, err
	}

	details, err := s.bookingRepo.GetWeekScheduleWithDetails(ctx, hairdresserID, weekStart)
	if err != nil {
		s.logger.Error("GetWeekSchedule: repository error for hairdresser=%s: %v", hairdresserID, err)
		return nil, fmt.Errorf("%w: GetWeekSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWeekSchedule: fetched %d bookings for hairdresser=%s", len(details), hairdresserID)
	return &models.ScheduleResponse{
		HairdresserID: hairdresserID,
		PeriodStart:   weekStart,
		PeriodEnd:     weekStart.AddDate(0, 0, domain.DaysPerWeek),
		Bookings:      models.FromDomainDetailsList(details),
	}, nil
}

// GetMonthSchedule получает расписание парикмахера на календарный месяц
func (s *Service) GetMonthSchedule(ctx context.Context, hairdresserID string, year int, month time.Month) (*models.ScheduleResponse, error) {
	s.logger.Info("GetMonthSchedule: hairdresser=%s, year=%d, month=%d", hairdresserID, year, month)

	if month < time.January || month > time.December {
		s.logger.Warn("GetMonthSchedule: invalid month=%d", month)
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	if err := s.checkHairdresser(ctx, "GetMonthSchedule", hairdresserID); err != nil {
		return nil, err
	}

	details, err := s.bookingRepo.GetMonthlyScheduleWithDetails(ctx, hairdresserID, year, month)
	if err != nil {
		s.logger.Error("GetMonthSchedule: repository error for hairdresser=%s: %v", hairdresserID, err)
		return nil, fmt.Errorf("%w: GetMonthSchedule - repository error: %v", ErrInternal, err)
	}

	periodStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	s.logger.Info("GetMonthSchedule: fetched %d bookings for hairdresser=%s", len(details), hairdresserID)
	return &models.ScheduleResponse{
		HairdresserID: hairdresserID,
		PeriodStart:   periodStart,
		PeriodEnd:     periodStart.AddDate(0, 1, 0),
		Bookings:      models.FromDomainDetailsList(details),
	}, nil
}

// checkHairdresser проверяет существование парикмахера
func (s *Service) checkHairdresser(ctx context.Context, op string, hairdresserID string) error {
	if _, err := s.users.GetHairdresser(ctx, hairdresserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: hairdresser id=%s not found", op, hairdresserID)
			return ErrHairdresserNotFound
		}
		s.logger.Error("%s: failed to get hairdresser id=%s: %v", op, hairdresserID, err)
		return fmt.Errorf("%w: %s - failed to get hairdresser: %v", ErrInternal, op, err)
	}
	return nil
}
