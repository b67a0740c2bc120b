package dto_test

import (
	"camping/internal/domains/camping/model"
	"camping/internal/domains/camping/model/dto"
	"camping/shared/constant"
	"camping/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListCampingsRequest_ToFilter(t *testing.T) {
	minPrice := 50.0
	maxPrice := 100.0

	tests := []struct {
		name      string
		req       dto.ListCampingsRequest
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "no filters",
			req:       dto.ListCampingsRequest{},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "all locations is ignored",
			req:       dto.ListCampingsRequest{Location: constant.AllLocations},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "price range",
			req:       dto.ListCampingsRequest{MinPrice: &minPrice, MaxPrice: &maxPrice},
			wantWhere: "(campings.price_per_night >= :min_price AND campings.price_per_night <= :max_price)",
			wantArgs:  map[string]any{"min_price": 50.0, "max_price": 100.0},
		},
		{
			name:      "every filter",
			req:       dto.ListCampingsRequest{Location: "Lake Side", MinPrice: &minPrice, OnlyAvailable: true},
			wantWhere: "(campings.location = :location AND campings.price_per_night >= :min_price AND campings.availability = :availability)",
			wantArgs:  map[string]any{"location": "Lake Side", "min_price": 50.0, "availability": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := tt.req.ToFilter()

			where, args := filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestListCampingsRequest_Validate(t *testing.T) {
	low := 10.0
	high := 20.0

	assert.NoError(t, (&dto.ListCampingsRequest{MinPrice: &low, MaxPrice: &high}).Validate())
	assert.NoError(t, (&dto.ListCampingsRequest{MinPrice: &high}).Validate())

	err := (&dto.ListCampingsRequest{MinPrice: &high, MaxPrice: &low}).Validate()
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestCreateCampingRequest_ToModel(t *testing.T) {
	req := dto.CreateCampingRequest{Name: "Pine Ridge", Location: "Lake Side", PricePerNight: 45, Description: "Quiet"}

	camping := req.ToModel("owner-1", "owner-1")

	assert.NotEmpty(t, camping.ID)
	assert.Equal(t, "owner-1", camping.OwnerID)
	assert.True(t, camping.Availability)
	assert.Nil(t, camping.ImageURL)
	assert.InDelta(t, 45.0, camping.PricePerNight, 0.001)
}

func TestCampingResponse_FromModel(t *testing.T) {
	url := "https://cdn.example.com/campings/c-1/a.png"

	res := dto.FromModels([]model.Camping{{ID: "c-1", OwnerID: "o-1", Name: "Pine", ImageURL: &url, Availability: true}})

	assert.Len(t, res, 1)
	assert.Equal(t, "c-1", res[0].ID)
	assert.Equal(t, &url, res[0].ImageURL)
	assert.True(t, res[0].Availability)
	assert.Empty(t, dto.FromModels(nil))
}
