package rebook_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/booking"
	treatmentRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/treatment"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

// UseCase use case для переноса бронирования на другое время
type UseCase struct {
	bookingRepo  BookingRepository
	treatments   TreatmentCatalog
	txManager    TransactionManager
	workDay      domain.WorkDay
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	treatments TreatmentCatalog,
	txManager TransactionManager,
	workDay domain.WorkDay,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		treatments:   treatments,
		txManager:    txManager,
		workDay:      workDay,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute переносит бронирование на новый интервал
// При проверке конфликта переносимое бронирование исключается из выборки:
// перенос внутри собственного интервала не конфликтует сам с собой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RebookBooking: customer=%s, booking=%d, start=%s",
		req.CustomerID, req.BookingID, req.StartTime.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RebookBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Загружаем бронирование и проверяем владельца
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RebookBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RebookBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !booking.BelongsTo(req.CustomerID) {
		uc.logger.Warn("RebookBooking: booking id=%d belongs to another customer", req.BookingID)
		return nil, ErrAccessDenied
	}

	// 3. Определяем процедуру: новая или прежняя
	treatmentID := booking.TreatmentID
	if req.TreatmentID != nil {
		treatmentID = *req.TreatmentID
	}

	treatment, err := uc.treatments.GetByID(ctx, treatmentID)
	if err != nil {
		if errors.Is(err, treatmentRepo.ErrTreatmentNotFound) {
			uc.logger.Warn("RebookBooking: treatment id=%d not found", treatmentID)
			return nil, ErrTreatmentNotFound
		}
		uc.logger.Error("RebookBooking: failed to get treatment id=%d: %v", treatmentID, err)
		return nil, fmt.Errorf("%w: failed to get treatment: %v", ErrInternal, err)
	}

	endTime := req.StartTime.Add(treatment.Duration())

	// 4. Валидация нового интервала
	if err := validateInterval(req.StartTime, endTime, now, uc.workDay); err != nil {
		uc.logger.Warn("RebookBooking: interval validation failed: %v", err)
		return nil, err
	}

	// 5. Проверка конфликта и обновление в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Конфликт с ДРУГИМ бронированием (свое исключаем)
		taken, err := uc.bookingRepo.Any(txCtx, domain.BookingFilter{
			HairdresserID: &booking.HairdresserID,
			From:          ptr.Ptr(req.StartTime),
			To:            ptr.Ptr(endTime),
			ExcludeID:     ptr.Ptr(booking.ID),
		})
		if err != nil {
			// Конфликт сериализации не переупаковываем: менеджер транзакций
			// должен увидеть его и повторить всю транзакцию
			if errors.Is(err, bookingRepo.ErrSerializationFailure) {
				return err
			}
			uc.logger.Error("RebookBooking: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("RebookBooking: new slot taken for hairdresser=%s at %s",
				booking.HairdresserID, req.StartTime.Format("2006-01-02 15:04"))
			return ErrSlotTaken
		}

		// 5.2. Обновляем интервал, процедуру и сообщение на месте
		booking.TreatmentID = treatmentID
		booking.StartTime = req.StartTime
		booking.EndTime = endTime
		if req.Message != nil {
			booking.Message = req.Message
		}

		unit := uc.bookingRepo.NewUnit()
		unit.Update(booking)
		if err := unit.Save(txCtx); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotConflict) {
				uc.logger.Warn("RebookBooking: exclusion constraint rejected update for booking id=%d", booking.ID)
				return ErrSlotTaken
			}
			if errors.Is(err, bookingRepo.ErrSerializationFailure) {
				return err
			}
			uc.logger.Error("RebookBooking: failed to save booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RebookBooking: successfully rebooked booking id=%d to %s",
		booking.ID, req.StartTime.Format("2006-01-02 15:04"))

	return &Response{
		ID:             booking.ID,
		CustomerID:     booking.CustomerID,
		HairdresserID:  booking.HairdresserID,
		TreatmentID:    booking.TreatmentID,
		StartTime:      booking.StartTime,
		EndTime:        booking.EndTime,
		Message:        booking.Message,
		TreatmentName:  treatment.Name,
		TreatmentPrice: treatment.Price,
		CreatedAt:      booking.CreatedAt,
		UpdatedAt:      booking.UpdatedAt,
	}, nil
}
