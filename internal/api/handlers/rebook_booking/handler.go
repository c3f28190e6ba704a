package rebook_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	rebookBooking "github.com/m04kA/Salon-BookingService/internal/usecase/rebook_booking"
)

const (
	msgInvalidBookingID    = "некорректный ID бронирования"
	msgInvalidBody         = "некорректное тело запроса"
	msgInvalidStart        = "некорректный формат времени начала, ожидается RFC3339"
	msgBookingNotFound     = "бронирование не найдено"
	msgAccessDenied        = "нет доступа к этому бронированию"
	msgTreatmentNotFound   = "процедура не найдена"
	msgSlotTaken           = "выбранное время уже занято"
	msgOutsideWorkingHours = "время выходит за рамки рабочего дня"
	msgDateInPast          = "нельзя перенести бронирование в прошлое"
	msgInvalidRequest      = "некорректные параметры запроса"
)

type Handler struct {
	useCase RebookBookingUseCase
	logger  Logger
}

func NewHandler(useCase RebookBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID := middleware.UserID(r.Context())

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RebookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(customerID, bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, rebookBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, rebookBooking.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/{id} - Access denied: booking_id=%d, customer_id=%s", bookingID, customerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, rebookBooking.ErrTreatmentNotFound):
			h.logger.Warn("PUT /bookings/{id} - Treatment not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgTreatmentNotFound)

		case errors.Is(err, rebookBooking.ErrSlotTaken):
			h.logger.Warn("PUT /bookings/{id} - Slot taken: booking_id=%d, start=%s", bookingID, req.Start)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, rebookBooking.ErrOutsideWorkingHours):
			h.logger.Warn("PUT /bookings/{id} - Outside working hours: start=%s", req.Start)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, rebookBooking.ErrDateInPast):
			h.logger.Warn("PUT /bookings/{id} - Start time in past: start=%s", req.Start)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, rebookBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Rebooked: booking_id=%d, customer_id=%s", bookingID, customerID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
