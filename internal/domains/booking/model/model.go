package model

import (
	"camping/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldUserID     = "user_id"
	FieldCampingID  = "camping_id"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
	FieldTotalPrice = "total_price"

	EventCreated   = "booking.created"
	EventCancelled = "booking.cancelled"
)

type Booking struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	CampingID  string    `db:"camping_id"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	TotalPrice float64   `db:"total_price"`
	model.Metadata
}
