package get_available_times

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/domain"
	getAvailableTimes "github.com/m04kA/Salon-BookingService/internal/usecase/get_available_times"
)

const (
	msgInvalidTreatmentID  = "некорректный параметр treatmentId"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgHairdresserNotFound = "парикмахер не найден"
	msgTreatmentNotFound   = "процедура не найдена"
	msgInvalidRequest      = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/hairdressers/{hairdresserId}/available-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hairdresserID := mux.Vars(r)["hairdresserId"]

	treatmentID, err := strconv.ParseInt(r.URL.Query().Get("treatmentId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-times - Invalid treatmentId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTreatmentID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /available-times - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableTimes.Request{
		HairdresserID: hairdresserID,
		TreatmentID:   treatmentID,
		Date:          date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTimes.ErrHairdresserNotFound):
			h.logger.Warn("GET /available-times - Hairdresser not found: hairdresser_id=%s", hairdresserID)
			handlers.RespondNotFound(w, msgHairdresserNotFound)

		case errors.Is(err, getAvailableTimes.ErrTreatmentNotFound):
			h.logger.Warn("GET /available-times - Treatment not found: treatment_id=%d", treatmentID)
			handlers.RespondNotFound(w, msgTreatmentNotFound)

		case errors.Is(err, getAvailableTimes.ErrInvalidInput):
			h.logger.Warn("GET /available-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /available-times - Failed: hairdresser_id=%s, error=%v", hairdresserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
