package dto

import (
	"camping/internal/domains/camping/model"
	"camping/shared/constant"
	gDto "camping/shared/dto"
	"camping/shared/failure"
	gModel "camping/shared/model"
	"mime/multipart"

	"github.com/google/uuid"
)

const (
	argMinPrice = "min_price"
	argMaxPrice = "max_price"
)

// ListCampingsRequest carries the optional search filters. Nil or empty fields do not filter.
type ListCampingsRequest struct {
	Location      string
	MinPrice      *float64
	MaxPrice      *float64
	OnlyAvailable bool
}

func (r *ListCampingsRequest) Validate() error {
	if r.MinPrice != nil && r.MaxPrice != nil && *r.MinPrice > *r.MaxPrice {
		return failure.BadRequestFromString("minPrice cannot be greater than maxPrice")
	}

	return nil
}

// ToFilter ANDs every present filter. "All Locations" means any location.
func (r *ListCampingsRequest) ToFilter() gDto.FilterGroup {
	filter := gDto.And()

	if r.Location != "" && r.Location != constant.AllLocations {
		filter.Add(gDto.Eq(model.TableName, model.FieldLocation, r.Location))
	}

	if r.MinPrice != nil {
		filter.Add(gDto.Filter{
			ArgName:  argMinPrice,
			Field:    model.FieldPricePerNight,
			Value:    *r.MinPrice,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if r.MaxPrice != nil {
		filter.Add(gDto.Filter{
			ArgName:  argMaxPrice,
			Field:    model.FieldPricePerNight,
			Value:    *r.MaxPrice,
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		})
	}

	if r.OnlyAvailable {
		filter.Add(gDto.Eq(model.TableName, model.FieldAvailability, true))
	}

	return filter
}

type CreateCampingRequest struct {
	Name          string  `json:"name"            validate:"required,notblank,max=150"`
	Location      string  `json:"location"        validate:"required,notblank,max=150"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
	Description   string  `json:"description"     validate:"required,notblank"`
	UserID        string  `json:"user_id"         validate:"omitempty,uuid"`
}

func (r *CreateCampingRequest) ToModel(ownerID, actor string) model.Camping {
	return model.Camping{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		Name:          r.Name,
		Location:      r.Location,
		PricePerNight: r.PricePerNight,
		Description:   r.Description,
		Availability:  true,
		Metadata:      gModel.NewMetadata(actor),
	}
}

type CreateCampingResponse struct {
	CampingID string `json:"campingId"`
}

type UploadImageRequest struct {
	Image *multipart.FileHeader `json:"file" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpeg image/webp,maxfilesize=5"`
}

type UploadImageResponse struct {
	ImageURL string `json:"imageUrl"`
}

// ImageUpdate is the column set written after an upload.
type ImageUpdate struct {
	ImageURL string `db:"image_url"`
}

type CampingResponse struct {
	ID            string  `json:"id"`
	OwnerID       string  `json:"owner_id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"price_per_night"`
	Description   string  `json:"description"`
	Availability  bool    `json:"availability"`
	ImageURL      *string `json:"image_url"`
	gDto.Metadata
}

func (r *CampingResponse) FromModel(camping model.Camping) {
	r.ID = camping.ID
	r.OwnerID = camping.OwnerID
	r.Name = camping.Name
	r.Location = camping.Location
	r.PricePerNight = camping.PricePerNight
	r.Description = camping.Description
	r.Availability = camping.Availability
	r.ImageURL = camping.ImageURL
	r.Metadata.FromModel(camping.Metadata)
}

func FromModels(campings []model.Camping) []CampingResponse {
	res := make([]CampingResponse, len(campings))
	for i, camping := range campings {
		res[i].FromModel(camping)
	}

	return res
}
