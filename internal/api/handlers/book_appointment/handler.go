package book_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	bookAppointment "github.com/m04kA/Salon-BookingService/internal/usecase/book_appointment"
)

const (
	msgInvalidBody         = "некорректное тело запроса"
	msgInvalidStart        = "некорректный формат времени начала, ожидается RFC3339"
	msgCustomerNotFound    = "клиент не найден"
	msgHairdresserNotFound = "парикмахер не найден"
	msgTreatmentNotFound   = "процедура не найдена"
	msgSlotTaken           = "выбранное время уже занято"
	msgOutsideWorkingHours = "время выходит за рамки рабочего дня"
	msgDateInPast          = "нельзя забронировать время в прошлом"
	msgInvalidRequest      = "некорректные параметры запроса"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID := middleware.UserID(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: customer_id=%s", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, bookAppointment.ErrHairdresserNotFound):
			h.logger.Warn("POST /bookings - Hairdresser not found: hairdresser_id=%s", req.HairdresserID)
			handlers.RespondNotFound(w, msgHairdresserNotFound)

		case errors.Is(err, bookAppointment.ErrTreatmentNotFound):
			h.logger.Warn("POST /bookings - Treatment not found: treatment_id=%d", req.TreatmentID)
			handlers.RespondNotFound(w, msgTreatmentNotFound)

		case errors.Is(err, bookAppointment.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: hairdresser_id=%s, start=%s", req.HairdresserID, req.Start)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, bookAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: start=%s", req.Start)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, bookAppointment.ErrDateInPast):
			h.logger.Warn("POST /bookings - Start time in past: start=%s", req.Start)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /bookings - Failed: customer_id=%s, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Created: booking_id=%d, customer_id=%s", result.ID, customerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
