package get_available_times

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	getAvailableTimes "github.com/m04kA/Salon-BookingService/internal/usecase/get_available_times"
)

// AvailableTimesResponse HTTP response model
type AvailableTimesResponse struct {
	HairdresserID string   `json:"hairdresserId"`
	TreatmentID   int64    `json:"treatmentId"`
	Date          string   `json:"date"`
	Times         []string `json:"times"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTimes.Response) *AvailableTimesResponse {
	times := make([]string, len(resp.Times))
	for i, t := range resp.Times {
		times[i] = t.Format(time.RFC3339)
	}

	return &AvailableTimesResponse{
		HairdresserID: resp.HairdresserID,
		TreatmentID:   resp.TreatmentID,
		Date:          resp.Date.Format(domain.DateFormat),
		Times:         times,
	}
}
