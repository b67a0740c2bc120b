package model

import "camping/shared/model"

const (
	TableName  = "campings"
	EntityName = "camping"

	FieldID            = "id"
	FieldOwnerID       = "owner_id"
	FieldName          = "name"
	FieldLocation      = "location"
	FieldPricePerNight = "price_per_night"
	FieldDescription   = "description"
	FieldAvailability  = "availability"
	FieldImageURL      = "image_url"

	ImageDirectory = "campings"
)

type Camping struct {
	ID            string  `db:"id"`
	OwnerID       string  `db:"owner_id"`
	Name          string  `db:"name"`
	Location      string  `db:"location"`
	PricePerNight float64 `db:"price_per_night"`
	Description   string  `db:"description"`
	Availability  bool    `db:"availability"`
	ImageURL      *string `db:"image_url"`
	model.Metadata
}
