package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/booking"
	treatmentRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/treatment"
	userRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/user"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	users        UserDirectory
	treatments   TreatmentCatalog
	txManager    TransactionManager
	workDay      domain.WorkDay
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	users UserDirectory,
	treatments TreatmentCatalog,
	txManager TransactionManager,
	workDay domain.WorkDay,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		users:        users,
		treatments:   treatments,
		txManager:    txManager,
		workDay:      workDay,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликта и запись выполняются в сериализуемой транзакции;
// ограничение БД на пересечение интервалов страхует от гонки, когда две
// проверки проходят до первого коммита
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: customer=%s, hairdresser=%s, treatment=%d, start=%s",
		req.CustomerID, req.HairdresserID, req.TreatmentID, req.StartTime.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Проверяем существование клиента
	if _, err := uc.users.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("BookAppointment: customer id=%s not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("BookAppointment: failed to get customer id=%s: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 3. Проверяем существование парикмахера
	if _, err := uc.users.GetHairdresser(ctx, req.HairdresserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("BookAppointment: hairdresser id=%s not found", req.HairdresserID)
			return nil, ErrHairdresserNotFound
		}
		uc.logger.Error("BookAppointment: failed to get hairdresser id=%s: %v", req.HairdresserID, err)
		return nil, fmt.Errorf("%w: failed to get hairdresser: %v", ErrInternal, err)
	}

	// 4. Получаем процедуру - длительность определяет конец интервала
	treatment, err := uc.treatments.GetByID(ctx, req.TreatmentID)
	if err != nil {
		if errors.Is(err, treatmentRepo.ErrTreatmentNotFound) {
			uc.logger.Warn("BookAppointment: treatment id=%d not found", req.TreatmentID)
			return nil, ErrTreatmentNotFound
		}
		uc.logger.Error("BookAppointment: failed to get treatment id=%d: %v", req.TreatmentID, err)
		return nil, fmt.Errorf("%w: failed to get treatment: %v", ErrInternal, err)
	}

	endTime := req.StartTime.Add(treatment.Duration())

	// 5. Валидация интервала (не в прошлом, внутри рабочих часов)
	if err := validateInterval(req.StartTime, endTime, now, uc.workDay); err != nil {
		uc.logger.Warn("BookAppointment: interval validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 6. Проверка конфликта и запись в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Существует ли пересекающееся бронирование у парикмахера
		taken, err := uc.bookingRepo.Any(txCtx, domain.BookingFilter{
			HairdresserID: &req.HairdresserID,
			From:          ptr.Ptr(req.StartTime),
			To:            ptr.Ptr(endTime),
		})
		if err != nil {
			// Конфликт сериализации не переупаковываем: менеджер транзакций
			// должен увидеть его и повторить всю транзакцию
			if errors.Is(err, bookingRepo.ErrSerializationFailure) {
				return err
			}
			uc.logger.Error("BookAppointment: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("BookAppointment: slot taken for hairdresser=%s at %s",
				req.HairdresserID, req.StartTime.Format("2006-01-02 15:04"))
			return ErrSlotTaken
		}

		// 6.2. Сохраняем бронирование через unit of work
		booking := &domain.Booking{
			CustomerID:    req.CustomerID,
			HairdresserID: req.HairdresserID,
			TreatmentID:   req.TreatmentID,
			StartTime:     req.StartTime,
			EndTime:       endTime,
			Message:       req.Message,
		}

		unit := uc.bookingRepo.NewUnit()
		unit.Add(booking)
		if err := unit.Save(txCtx); err != nil {
			// Ограничение БД сработало: интервал заняли между проверкой и записью
			if errors.Is(err, bookingRepo.ErrSlotConflict) {
				uc.logger.Warn("BookAppointment: exclusion constraint rejected insert for hairdresser=%s", req.HairdresserID)
				return ErrSlotTaken
			}
			if errors.Is(err, bookingRepo.ErrSerializationFailure) {
				return err
			}
			uc.logger.Error("BookAppointment: failed to save booking: %v", err)
			return fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookAppointment: successfully created booking id=%d", result.ID)

	return &Response{
		ID:             result.ID,
		CustomerID:     result.CustomerID,
		HairdresserID:  result.HairdresserID,
		TreatmentID:    result.TreatmentID,
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
		Message:        result.Message,
		TreatmentName:  treatment.Name,
		TreatmentPrice: treatment.Price,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}
