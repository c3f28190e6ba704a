package models

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// BookingResponse бронирование в ответе сервиса
type BookingResponse struct {
	ID            int64     `json:"id"`
	CustomerID    string    `json:"customerId"`
	HairdresserID string    `json:"hairdresserId"`
	TreatmentID   int64     `json:"treatmentId"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Message       *string   `json:"message,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BookingDetailsResponse бронирование со связанными сущностями
type BookingDetailsResponse struct {
	BookingResponse
	CustomerName    string  `json:"customerName"`
	HairdresserName string  `json:"hairdresserName"`
	TreatmentName   string  `json:"treatmentName"`
	TreatmentPrice  float64 `json:"treatmentPrice"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ScheduleResponse расписание парикмахера за период
type ScheduleResponse struct {
	HairdresserID string                   `json:"hairdresserId"`
	PeriodStart   time.Time                `json:"periodStart"`
	PeriodEnd     time.Time                `json:"periodEnd"`
	Bookings      []BookingDetailsResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		HairdresserID: b.HairdresserID,
		TreatmentID:   b.TreatmentID,
		Start:         b.StartTime,
		End:           b.EndTime,
		Message:       b.Message,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainDetails конвертирует domain модель с JOIN'ами в DTO
func FromDomainDetails(d *domain.BookingDetails) *BookingDetailsResponse {
	if d == nil {
		return nil
	}
	return &BookingDetailsResponse{
		BookingResponse: *FromDomainBooking(&d.Booking),
		CustomerName:    d.Customer.UserName,
		HairdresserName: d.Hairdresser.UserName,
		TreatmentName:   d.Treatment.Name,
		TreatmentPrice:  d.Treatment.Price,
		DurationMinutes: d.Treatment.DurationMinutes,
	}
}

// FromDomainDetailsList конвертирует список domain моделей в DTO
func FromDomainDetailsList(details []*domain.BookingDetails) []BookingDetailsResponse {
	result := make([]BookingDetailsResponse, 0, len(details))
	for _, d := range details {
		if resp := FromDomainDetails(d); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}
