package dto

import (
	"camping/internal/domains/booking/model"
	"camping/shared/constant"
	gDto "camping/shared/dto"
	"camping/shared/failure"
	gModel "camping/shared/model"
	"camping/shared/timezone"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	UserID    string `json:"user_id"    validate:"omitempty,uuid"`
	CampingID string `json:"camping_id" validate:"required,uuid"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"   validate:"required"`
}

// Period parses the stay. The end must be strictly after the start and at most
// MaxStayNights later.
func (r *CreateBookingRequest) Period() (start, end time.Time, err error) {
	start, err = timezone.ParseDate(r.StartDate)
	if err != nil {
		return start, end, failure.BadRequestFromString("start_date: " + err.Error())
	}

	end, err = timezone.ParseDate(r.EndDate)
	if err != nil {
		return start, end, failure.BadRequestFromString("end_date: " + err.Error())
	}

	if !end.After(start) {
		return start, end, failure.BadRequestFromString("end_date must be after start_date")
	}

	if end.After(start.AddDate(0, 0, constant.MaxStayNights)) {
		return start, end, failure.BadRequestFromString(fmt.Sprintf("a stay cannot exceed %d nights", constant.MaxStayNights))
	}

	return start, end, nil
}

func (r *CreateBookingRequest) ToModel(userID string, start, end time.Time, totalPrice float64) model.Booking {
	return model.Booking{
		ID:         uuid.NewString(),
		UserID:     userID,
		CampingID:  r.CampingID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: totalPrice,
		Metadata:   gModel.NewMetadata(userID),
	}
}

// Nights counts started 24h periods, so a partial day is charged as a full night.
func Nights(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / constant.HoursPerDay))
}

// TotalPrice is rounded to cents.
func TotalPrice(pricePerNight float64, nights int) float64 {
	return math.Round(pricePerNight*float64(nights)*100) / 100
}

type CreateBookingResponse struct {
	BookingID  string  `json:"bookingId"`
	TotalPrice float64 `json:"totalPrice"`
}

type BookingResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	CampingID  string  `json:"camping_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	TotalPrice float64 `json:"total_price"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.UserID = booking.UserID
	r.CampingID = booking.CampingID
	r.StartDate = timezone.Format(booking.StartDate, constant.DateFormat)
	r.EndDate = timezone.Format(booking.EndDate, constant.DateFormat)
	r.TotalPrice = booking.TotalPrice
	r.Metadata.FromModel(booking.Metadata)
}

func FromModels(bookings []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		res[i].FromModel(booking)
	}

	return res
}

// Event is the payload published on the booking topic.
type Event struct {
	Type       string  `json:"type"`
	BookingID  string  `json:"bookingId"`
	UserID     string  `json:"userId"`
	CampingID  string  `json:"campingId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	TotalPrice float64 `json:"totalPrice"`
	OccurredAt string  `json:"occurredAt"`
}

func NewEvent(eventType string, booking model.Booking) Event {
	return Event{
		Type:       eventType,
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		CampingID:  booking.CampingID,
		StartDate:  timezone.Format(booking.StartDate, constant.DateFormat),
		EndDate:    timezone.Format(booking.EndDate, constant.DateFormat),
		TotalPrice: booking.TotalPrice,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}
}
