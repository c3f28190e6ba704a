package get_available_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	treatmentRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/treatment"
	userRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/user"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

// UseCase use case для получения свободного времени парикмахера на день
type UseCase struct {
	bookingRepo  BookingRepository
	users        UserDirectory
	treatments   TreatmentCatalog
	workDay      domain.WorkDay
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	users UserDirectory,
	treatments TreatmentCatalog,
	workDay domain.WorkDay,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		users:        users,
		treatments:   treatments,
		workDay:      workDay,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute вычисляет свободные времена начала для парикмахера, процедуры
// и дня. Полностью занятый день дает пустой список, а не ошибку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: hairdresser=%s, treatment=%d, date=%s",
		req.HairdresserID, req.TreatmentID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование парикмахера
	if _, err := uc.users.GetHairdresser(ctx, req.HairdresserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("GetAvailableTimes: hairdresser id=%s not found", req.HairdresserID)
			return nil, ErrHairdresserNotFound
		}
		uc.logger.Error("GetAvailableTimes: failed to get hairdresser id=%s: %v", req.HairdresserID, err)
		return nil, fmt.Errorf("%w: failed to get hairdresser: %v", ErrInternal, err)
	}

	// 3. Получаем процедуру - ее длительность задает размер слота
	treatment, err := uc.treatments.GetByID(ctx, req.TreatmentID)
	if err != nil {
		if errors.Is(err, treatmentRepo.ErrTreatmentNotFound) {
			uc.logger.Warn("GetAvailableTimes: treatment id=%d not found", req.TreatmentID)
			return nil, ErrTreatmentNotFound
		}
		uc.logger.Error("GetAvailableTimes: failed to get treatment id=%d: %v", req.TreatmentID, err)
		return nil, fmt.Errorf("%w: failed to get treatment: %v", ErrInternal, err)
	}

	// 4. Разбиваем рабочий день на кандидатные слоты; уже прошедшие
	// времена начала не предлагаем
	slots := generateSlots(uc.workDay, req.Date, treatment.Duration(), uc.timeProvider.Now())

	// 5. Получаем бронирования парикмахера, пересекающие рабочий день
	filter := domain.BookingFilter{
		HairdresserID: &req.HairdresserID,
		From:          ptr.Ptr(uc.workDay.OpensAt(req.Date)),
		To:            ptr.Ptr(uc.workDay.ClosesAt(req.Date)),
	}

	bookings, err := uc.bookingRepo.Find(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Убираем занятые слоты
	available := filterAvailable(slots, treatment.Duration(), bookings)

	uc.logger.Info("GetAvailableTimes: %d of %d slots available for hairdresser=%s on %s",
		len(available), len(slots), req.HairdresserID, req.Date.Format(domain.DateFormat))

	return &Response{
		HairdresserID: req.HairdresserID,
		TreatmentID:   req.TreatmentID,
		Date:          req.Date,
		Times:         available,
	}, nil
}
