package rebook_booking

import (
	"time"

	rebookBooking "github.com/m04kA/Salon-BookingService/internal/usecase/rebook_booking"
)

// RebookRequest HTTP request model
type RebookRequest struct {
	TreatmentID *int64  `json:"treatmentId,omitempty"`
	Start       string  `json:"start"` // RFC3339
	Message     *string `json:"message,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64   `json:"id"`
	CustomerID     string  `json:"customerId"`
	HairdresserID  string  `json:"hairdresserId"`
	TreatmentID    int64   `json:"treatmentId"`
	Start          string  `json:"start"`
	End            string  `json:"end"`
	Message        *string `json:"message,omitempty"`
	TreatmentName  string  `json:"treatmentName"`
	TreatmentPrice float64 `json:"treatmentPrice"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RebookRequest) ToUseCaseRequest(customerID string, bookingID int64) (*rebookBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	return &rebookBooking.Request{
		CustomerID:  customerID,
		BookingID:   bookingID,
		TreatmentID: r.TreatmentID,
		StartTime:   start,
		Message:     r.Message,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rebookBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		CustomerID:     resp.CustomerID,
		HairdresserID:  resp.HairdresserID,
		TreatmentID:    resp.TreatmentID,
		Start:          resp.StartTime.Format(time.RFC3339),
		End:            resp.EndTime.Format(time.RFC3339),
		Message:        resp.Message,
		TreatmentName:  resp.TreatmentName,
		TreatmentPrice: resp.TreatmentPrice,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
