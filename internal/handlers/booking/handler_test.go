package booking_test

import (
	"camping/infras/otel/mocks"
	bookingMocks "camping/internal/domains/booking/mocks"
	"camping/internal/domains/booking/model/dto"
	"camping/internal/handlers/booking"
	"camping/shared/failure"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	userID    = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	campingID = "1f0e2d3c-4b5a-4978-8695-a4b3c2d1e0f9"
	bookingID = "9b2f4d1e-3c5a-4e7b-8d6f-0a1b2c3d4e5f"
)

func newRouter(t *testing.T) (*chi.Mux, *bookingMocks.MockBookingService) {
	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBookingService(ctrl)

	handler := booking.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestHandler_CreateBooking(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *bookingMocks.MockBookingService)
		wantCode  int
		wantBody  string
	}{
		{
			name: "created",
			body: `{"camping_id":"` + campingID + `","start_date":"2026-07-01","end_date":"2026-07-04"}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().
					Create(gomock.Any(), dto.CreateBookingRequest{CampingID: campingID, StartDate: "2026-07-01", EndDate: "2026-07-04"}).
					Return(dto.CreateBookingResponse{BookingID: bookingID, TotalPrice: 300}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `{"data":{"bookingId":"` + bookingID + `","totalPrice":300}}`,
		},
		{
			name:      "missing camping",
			body:      `{"start_date":"2026-07-01","end_date":"2026-07-04"}`,
			setupMock: func(*bookingMocks.MockBookingService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed json",
			body:      `{"camping_id":`,
			setupMock: func(*bookingMocks.MockBookingService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "camping not found",
			body: `{"camping_id":"` + campingID + `","start_date":"2026-07-01","end_date":"2026-07-04"}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.CreateBookingResponse{}, failure.NotFound("camping spot not found"))
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"camping spot not found"}`,
		},
		{
			name: "storage error is masked",
			body: `{"camping_id":"` + campingID + `","start_date":"2026-07-01","end_date":"2026-07-04"}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.CreateBookingResponse{}, errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestHandler_GetBookingsByUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().ListForUser(gomock.Any(), userID).Return([]dto.BookingResponse{{ID: bookingID, UserID: userID, TotalPrice: 90}}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/"+userID, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_price":90`)
	})

	t.Run("none", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().ListForUser(gomock.Any(), userID).Return(nil, failure.NotFound("No bookings yet"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/"+userID, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"No bookings yet"}`, rec.Body.String())
	})

	t.Run("bad id", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/42", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_DeleteBooking(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "deleted", err: nil, wantCode: http.StatusOK},
		{name: "not found", err: failure.NotFound("booking not found"), wantCode: http.StatusNotFound},
		{name: "someone else's", err: failure.ResourceRestrictedError, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			svc.EXPECT().Delete(gomock.Any(), bookingID).Return(tt.err)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/bookings/"+bookingID, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
