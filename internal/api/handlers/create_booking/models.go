package create_booking

import (
	"time"

	"github.com/Wong-WS/swim-scheduler/internal/domain"
	createBooking "github.com/Wong-WS/swim-scheduler/internal/usecase/create_booking"
	"github.com/Wong-WS/swim-scheduler/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	PlaceID         string `json:"placeId"`
	Date            string `json:"date"`      // "2025-11-03"
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PlaceID         string    `json:"placeId"`
	BookingDate     string    `json:"bookingDate"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Name:            r.Name,
		Email:           r.Email,
		PlaceID:         r.PlaceID,
		Date:            date,
		StartTime:       types.TimeString(r.StartTime),
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:              resp.ID,
		Name:            resp.Name,
		Email:           resp.Email,
		PlaceID:         resp.PlaceID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.Format(domain.TimeFormat),
		EndTime:         resp.EndTime.Format(domain.TimeFormat),
		DurationMinutes: resp.DurationMinutes,
		CreatedAt:       resp.CreatedAt,
	}
}
