package dto_test

import (
	"camping/internal/domains/booking/model"
	"camping/internal/domains/booking/model/dto"
	"camping/shared/failure"
	"camping/shared/timezone"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_Period(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantErr    string
		wantNights int
	}{
		{name: "calendar dates", start: "2024-07-01", end: "2024-07-04", wantNights: 3},
		{name: "partial day rounds up", start: "2024-07-01T10:00:00Z", end: "2024-07-02T12:00:00Z", wantNights: 2},
		{name: "exact day", start: "2024-07-01T00:00:00Z", end: "2024-07-02T00:00:00Z", wantNights: 1},
		{name: "same day", start: "2024-07-01", end: "2024-07-01", wantErr: "end_date must be after start_date"},
		{name: "reversed", start: "2024-07-04", end: "2024-07-01", wantErr: "end_date must be after start_date"},
		{name: "bad start", start: "01/07/2024", end: "2024-07-04", wantErr: "start_date: date must be YYYY-MM-DD or RFC3339"},
		{name: "bad end", start: "2024-07-01", end: "tomorrow", wantErr: "end_date: date must be YYYY-MM-DD or RFC3339"},
		{name: "longest stay", start: "2024-01-01", end: "2024-12-31", wantNights: 365},
		{name: "too long", start: "2024-01-01", end: "2025-01-01", wantErr: "a stay cannot exceed 365 nights"},
		{name: "centuries long", start: "1000-01-01", end: "9999-12-31", wantErr: "a stay cannot exceed 365 nights"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{StartDate: tt.start, EndDate: tt.end}

			start, end, err := req.Period()

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantNights, dto.Nights(start, end))
		})
	}
}

func TestCreateBookingRequest_Period_DaylightSaving(t *testing.T) {
	original := timezone.GetLocation()
	t.Cleanup(func() { timezone.SetLocation(original) })

	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	timezone.SetLocation(newYork)

	tests := []struct {
		name       string
		start, end string
		wantNights int
	}{
		{name: "fall back night", start: "2024-11-03", end: "2024-11-04", wantNights: 1},
		{name: "spring forward night", start: "2024-03-10", end: "2024-03-11", wantNights: 1},
		{name: "week across fall back", start: "2024-10-30", end: "2024-11-06", wantNights: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{StartDate: tt.start, EndDate: tt.end}

			start, end, err := req.Period()
			require.NoError(t, err)

			nights := dto.Nights(start, end)
			assert.Equal(t, tt.wantNights, nights)
			assert.InDelta(t, float64(tt.wantNights)*100, dto.TotalPrice(100, nights), 0.0001)
		})
	}
}

func TestTotalPrice(t *testing.T) {
	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)

	assert.InDelta(t, 300.0, dto.TotalPrice(100, dto.Nights(start, end)), 0.0001)
	assert.InDelta(t, 100.05, dto.TotalPrice(33.35, 3), 0.0001)
}

func TestNewEvent(t *testing.T) {
	booking := model.Booking{
		ID:         "b-1",
		UserID:     "u-1",
		CampingID:  "c-1",
		StartDate:  time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC),
		TotalPrice: 300,
	}

	event := dto.NewEvent(model.EventCreated, booking)

	assert.Equal(t, model.EventCreated, event.Type)
	assert.Equal(t, "b-1", event.BookingID)
	assert.InDelta(t, 300.0, event.TotalPrice, 0.0001)
	assert.NotEmpty(t, event.OccurredAt)
}
