package get_month_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/service/bookings"
)

const (
	msgInvalidYear         = "некорректный параметр year"
	msgInvalidMonth        = "некорректный параметр month"
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

// Handle GET /api/v1/hairdressers/{hairdresserId}/schedule/month
// Параметры year и month задают календарный месяц; по умолчанию - текущий
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hairdresserID := mux.Vars(r)["hairdresserId"]

	now := time.Now().UTC()
	year := now.Year()
	month := now.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /schedule/month - Invalid year: %v", err)
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}
		year = parsed
	}

	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			h.logger.Warn("GET /schedule/month - Invalid month: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		month = time.Month(parsed)
	}

	result, err := h.service.GetMonthSchedule(r.Context(), hairdresserID, year, month)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrHairdresserNotFound):
			h.logger.Warn("GET /schedule/month - Hairdresser not found: hairdresser_id=%s", hairdresserID)
			handlers.RespondNotFound(w, msgHairdresserNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /schedule/month - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /schedule/month - Failed: hairdresser_id=%s, error=%v", hairdresserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
