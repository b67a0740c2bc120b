package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"camping/infras/otel"
	"camping/infras/postgres"
	"camping/internal/domains/camping/model"
	gDto "camping/shared/dto"
	gRepo "camping/shared/repository"
	"context"

	"github.com/jmoiron/sqlx"
)

type Camping interface {
	Insert(ctx context.Context, model model.Camping) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Camping, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup, orderBy string, columns ...string) ([]model.Camping, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Camping, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Camping]
}

func New(db *postgres.Connection, otel otel.Otel) Camping {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Camping](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
