package service_test

import (
	"camping/infras/otel/mocks"
	userMocks "camping/internal/domains/user/mocks"
	"camping/internal/domains/user/model"
	"camping/internal/domains/user/service"
	"camping/shared"
	"camping/shared/constant"
	gModel "camping/shared/model"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	stored := model.User{
		ID:       "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Username: "camper",
		Email:    "camper@example.com",
		Password: "$2a$10$hash",
		Role:     constant.RoleOwner,
		Metadata: gModel.Metadata{CreatedAt: time.Now(), ModifiedAt: time.Now()},
	}
	filter := shared.FilterByID(stored.ID, model.FieldID, model.TableName)

	tests := []struct {
		name      string
		setupMock func()
		wantLen   int
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any(), filter, "").Return([]model.User{stored}, nil)
			},
			wantLen: 1,
		},
		{
			name: "unknown id returns empty list",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any(), filter, "").Return([]model.User{}, nil)
			},
			wantLen: 0,
		},
		{
			name: "storage error",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any(), filter, "").Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), stored.ID)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, res)
			assert.Len(t, res, tt.wantLen)
		})
	}
}

func TestUserService_GetOmitsPassword(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), "").Return([]model.User{{
		ID:       "u-1",
		Username: "camper",
		Password: "$2a$10$secret-hash",
		Role:     constant.RoleUser,
	}}, nil)

	res, err := svc.Get(context.Background(), "u-1")
	require.NoError(t, err)

	body, err := json.Marshal(res)
	require.NoError(t, err)

	assert.NotContains(t, string(body), "secret-hash")
	assert.NotContains(t, string(body), "password")
}
