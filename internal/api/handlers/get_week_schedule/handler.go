package get_week_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/service/bookings"
)

const (
	msgInvalidStart        = "некорректный параметр start, ожидается YYYY-MM-DD"
	msgHairdresserNotFound = "парикмахер не найден"
	msgInvalidRequest      = "некорректные параметры запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hairdressers/{hairdresserId}/schedule/week
// Параметр start задает первый день недели; по умолчанию - сегодня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hairdresserID := mux.Vars(r)["hairdresserId"]

	weekStart := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /schedule/week - Invalid start: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStart)
			return
		}
		weekStart = parsed
	}

	result, err := h.service.GetWeekSchedule(r.Context(), hairdresserID, weekStart)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrHairdresserNotFound):
			h.logger.Warn("GET /schedule/week - Hairdresser not found: hairdresser_id=%s", hairdresserID)
			handlers.RespondNotFound(w, msgHairdresserNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /schedule/week - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /schedule/week - Failed: hairdresser_id=%s, error=%v", hairdresserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
