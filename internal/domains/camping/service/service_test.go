package service_test

import (
	"camping/infras/otel/mocks"
	s3Mocks "camping/infras/s3/mocks"
	bookingMocks "camping/internal/domains/booking/mocks"
	campingMocks "camping/internal/domains/camping/mocks"
	"camping/internal/domains/camping/model"
	"camping/internal/domains/camping/model/dto"
	"camping/internal/domains/camping/service"
	"camping/shared/constant"
	gDto "camping/shared/dto"
	"camping/shared/failure"
	repoMocks "camping/shared/repository/mocks"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	ownerID   = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	otherID   = "9b2f7a51-3c0d-4a8e-8f37-1f6c2d9e4b10"
	campingID = "1f0e2d3c-4b5a-4978-8695-a4b3c2d1e0f9"
	oldImage  = "https://cdn.example.com/campings/1f0e2d3c-4b5a-4978-8695-a4b3c2d1e0f9/old.png"
)

func actorContext(id, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, id)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func ptr[T any](v T) *T {
	return &v
}

type fixture struct {
	repo        *campingMocks.MockCamping
	bookingRepo *bookingMocks.MockBooking
	transactor  *repoMocks.MockTransactor
	storage     *s3Mocks.MockS3
	svc         service.Camping
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:        campingMocks.NewMockCamping(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		transactor:  repoMocks.NewMockTransactor(ctrl),
		storage:     s3Mocks.NewMockS3(ctrl),
	}
	f.svc = service.New(f.repo, f.bookingRepo, f.transactor, f.storage, mocks.NewOtel())

	return f
}

// runTx executes the unit of work inline, the way a committed transaction would.
func (f fixture) runTx() {
	f.transactor.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func (f fixture) expectImageRemoved(url string) <-chan struct{} {
	done := make(chan struct{})

	f.storage.EXPECT().
		DeleteFile(gomock.Any(), url).
		DoAndReturn(func(context.Context, string) error {
			close(done)

			return nil
		})

	return done
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("image was not removed")
	}
}

func TestCampingService_List(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.ListCampingsRequest
		setupMock func(f fixture)
		wantLen   int
		wantCode  int
	}{
		{
			name: "price range and availability",
			req:  dto.ListCampingsRequest{MinPrice: ptr(50.0), MaxPrice: ptr(100.0), OnlyAvailable: true},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), constant.Empty).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ string, _ ...string) ([]model.Camping, error) {
						assert.Len(t, filter.Filters, 3)

						return []model.Camping{{ID: campingID, PricePerNight: 75}}, nil
					})
			},
			wantLen: 1,
		},
		{
			name: "all locations means no filter",
			req:  dto.ListCampingsRequest{Location: constant.AllLocations},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), constant.Empty).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ string, _ ...string) ([]model.Camping, error) {
						assert.Empty(t, filter.Filters)

						return nil, nil
					})
			},
		},
		{
			name:      "inverted price range",
			req:       dto.ListCampingsRequest{MinPrice: ptr(100.0), MaxPrice: ptr(50.0)},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "storage error",
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), constant.Empty).
					Return(nil, errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.List(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Len(t, res, tt.wantLen)
		})
	}
}

func TestCampingService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Camping{ID: campingID, Name: "Pine Ridge"}, nil)

		res, err := f.svc.Get(context.Background(), campingID)

		require.NoError(t, err)
		assert.Equal(t, "Pine Ridge", res.Name)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Camping{}, nil)

		_, err := f.svc.Get(context.Background(), campingID)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCampingService_Create(t *testing.T) {
	req := dto.CreateCampingRequest{
		Name:          "Pine Ridge",
		Location:      "Oregon",
		PricePerNight: 45,
		Description:   "Quiet spot by the lake",
	}

	tests := []struct {
		name      string
		ctx       context.Context
		userID    string
		setupMock func(f fixture)
		wantOwner string
		wantCode  int
	}{
		{
			name: "owner from token",
			ctx:  actorContext(ownerID, constant.RoleOwner),
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, camping model.Camping) error {
						assert.Equal(t, ownerID, camping.OwnerID)
						assert.True(t, camping.Availability)

						return nil
					})
			},
		},
		{
			name:   "admin creates for another owner",
			ctx:    actorContext(otherID, constant.RoleAdmin),
			userID: ownerID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, camping model.Camping) error {
						assert.Equal(t, ownerID, camping.OwnerID)
						assert.Equal(t, otherID, camping.CreatedBy)

						return nil
					})
			},
		},
		{
			name:      "owner cannot create for someone else",
			ctx:       actorContext(otherID, constant.RoleOwner),
			userID:    ownerID,
			setupMock: func(fixture) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "guest",
			ctx:       context.Background(),
			setupMock: func(fixture) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name: "storage error",
			ctx:  actorContext(ownerID, constant.RoleOwner),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			r := req
			r.UserID = tt.userID

			res, err := f.svc.Create(tt.ctx, r)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.CampingID)
		})
	}
}

func TestCampingService_Delete(t *testing.T) {
	listing := model.Camping{ID: campingID, OwnerID: ownerID}

	t.Run("unbooked listing is removed with its image", func(t *testing.T) {
		f := newFixture(t)
		f.runTx()

		withImage := listing
		withImage.ImageURL = ptr(oldImage)

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(withImage, nil)
		f.bookingRepo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		removed := f.expectImageRemoved(oldImage)

		err := f.svc.Delete(actorContext(ownerID, constant.RoleOwner), campingID)

		require.NoError(t, err)
		waitFor(t, removed)
	})

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "booked listing stays intact",
			ctx:  actorContext(ownerID, constant.RoleOwner),
			setupMock: func(f fixture) {
				f.runTx()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(listing, nil)
				f.bookingRepo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "booking raced in before the delete",
			ctx:  actorContext(ownerID, constant.RoleOwner),
			setupMock: func(f fixture) {
				f.runTx()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(listing, nil)
				f.bookingRepo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), &pq.Error{Code: constant.PqErrorCodeFkViolation})
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "already deleted",
			ctx:  actorContext(ownerID, constant.RoleOwner),
			setupMock: func(f fixture) {
				f.runTx()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Camping{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "someone else's listing",
			ctx:  actorContext(otherID, constant.RoleOwner),
			setupMock: func(f fixture) {
				f.runTx()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(listing, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "storage error",
			ctx:  actorContext(ownerID, constant.RoleOwner),
			setupMock: func(f fixture) {
				f.runTx()
				f.repo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Camping{}, errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Delete(tt.ctx, campingID)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestCampingService_ListByOwner(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), constant.Empty).
			Return([]model.Camping{{ID: campingID, OwnerID: ownerID}}, nil)

		res, err := f.svc.ListByOwner(context.Background(), ownerID)

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, ownerID, res[0].OwnerID)
	})

	t.Run("empty is not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), constant.Empty).Return(nil, nil)

		_, err := f.svc.ListByOwner(context.Background(), ownerID)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCampingService_UploadImage(t *testing.T) {
	req := dto.UploadImageRequest{Image: &multipart.FileHeader{Filename: "tent.JPG", Size: 1024}}
	newImage := "https://cdn.example.com/campings/" + campingID + "/new.jpg"

	t.Run("replaces the previous image", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Camping{ID: campingID, OwnerID: ownerID, ImageURL: ptr(oldImage)}, nil)
		f.storage.EXPECT().
			UploadFile(gomock.Any(), model.ImageDirectory+"/"+campingID, req.Image, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ *multipart.FileHeader, fileName string) (string, error) {
				assert.True(t, strings.HasSuffix(fileName, ".jpg"))

				return newImage, nil
			})
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, newImage, fields[model.FieldImageURL])

				return nil
			})
		removed := f.expectImageRemoved(oldImage)

		res, err := f.svc.UploadImage(actorContext(ownerID, constant.RoleOwner), campingID, req)

		require.NoError(t, err)
		assert.Equal(t, newImage, res.ImageURL)
		waitFor(t, removed)
	})

	t.Run("failed update removes the new upload", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Camping{ID: campingID, OwnerID: ownerID}, nil)
		f.storage.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(newImage, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
		removed := f.expectImageRemoved(newImage)

		_, err := f.svc.UploadImage(actorContext(ownerID, constant.RoleOwner), campingID, req)

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		waitFor(t, removed)
	})

	tests := []struct {
		name     string
		ctx      context.Context
		found    model.Camping
		wantCode int
	}{
		{
			name:     "missing listing",
			ctx:      actorContext(ownerID, constant.RoleOwner),
			wantCode: http.StatusNotFound,
		},
		{
			name:     "someone else's listing",
			ctx:      actorContext(otherID, constant.RoleOwner),
			found:    model.Camping{ID: campingID, OwnerID: ownerID},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().
				Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tt.found, nil)

			_, err := f.svc.UploadImage(tt.ctx, campingID, req)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
