package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"camping/infras/otel"
	"camping/internal/domains/user/model"
	"camping/internal/domains/user/model/dto"
	"camping/internal/domains/user/repository"
	"camping/shared"
	"camping/shared/constant"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type User interface {
	Get(ctx context.Context, id string) ([]dto.UserResponse, error)
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Get returns zero or one users. An unknown id is not an error.
func (s *serviceImpl) Get(ctx context.Context, id string) (res []dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	users, err := s.repo.GetAll(ctx, shared.FilterByID(id, model.FieldID, model.TableName), "")
	if err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("failed to get user")

		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return dto.FromModels(users), nil
}
