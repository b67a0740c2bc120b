package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Camping=MockCampingService

import (
	"camping/infras/otel"
	"camping/infras/s3"
	bookingModel "camping/internal/domains/booking/model"
	bookingRepo "camping/internal/domains/booking/repository"
	"camping/internal/domains/camping/model"
	"camping/internal/domains/camping/model/dto"
	"camping/internal/domains/camping/repository"
	"camping/shared"
	"camping/shared/constant"
	"camping/shared/failure"
	gRepo "camping/shared/repository"
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	msgCampingNotFound = "camping spot not found"
	msgNoCampings      = "No campings found"
)

type Camping interface {
	List(ctx context.Context, req dto.ListCampingsRequest) ([]dto.CampingResponse, error)
	Get(ctx context.Context, id string) (dto.CampingResponse, error)
	Create(ctx context.Context, req dto.CreateCampingRequest) (dto.CreateCampingResponse, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]dto.CampingResponse, error)
	UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	repo        repository.Camping
	bookingRepo bookingRepo.Booking
	transactor  gRepo.Transactor
	storage     s3.S3
	otel        otel.Otel
}

func New(repo repository.Camping, bookingRepo bookingRepo.Booking, transactor gRepo.Transactor, storage s3.S3, otel otel.Otel) Camping {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		transactor:  transactor,
		storage:     storage,
		otel:        otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListCampingsRequest) (res []dto.CampingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".camping.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(); err != nil {
		return nil, err
	}

	campings, err := s.repo.GetAll(ctx, req.ToFilter(), constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to get campings")

		return nil, fmt.Errorf("failed to get campings: %w", err)
	}

	return dto.FromModels(campings), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CampingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".camping.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	camping, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get camping")

		return res, fmt.Errorf("failed to get camping: %w", err)
	}

	if camping.ID == "" {
		return res, failure.NotFound(msgCampingNotFound)
	}

	res.FromModel(camping)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCampingRequest) (res dto.CreateCampingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".camping.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ownerID, err := shared.ResolveActor(ctx, req.UserID)
	if err != nil {
		return res, err
	}

	camping := req.ToModel(ownerID, shared.ActorFromContext(ctx).ID)

	if err = s.repo.Insert(ctx, camping); err != nil {
		if failure.IsForeignKeyViolation(err) {
			return res, failure.NotFound("owner not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create camping")

		return res, fmt.Errorf("failed to create camping: %w", err)
	}

	res.CampingID = camping.ID

	return res, nil
}

// Delete locks the listing, refuses when any booking references it and removes it in one transaction.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".camping.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	var imageURL *string

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		camping, err := s.repo.GetForUpdateTx(ctx, tx, filter, model.FieldID, model.FieldOwnerID, model.FieldImageURL)
		if err != nil {
			return fmt.Errorf("failed to lock camping: %w", err)
		}

		if camping.ID == "" {
			return failure.NotFound(msgCampingNotFound)
		}

		if err = shared.AuthorizeActor(ctx, camping.OwnerID); err != nil {
			return err
		}

		booked, err := s.bookingRepo.ExistTx(ctx, tx, shared.FilterByID(id, bookingModel.FieldCampingID, bookingModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to check bookings: %w", err)
		}

		if booked {
			return failure.ListingBooked
		}

		deleted, err := s.repo.DeleteTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to delete camping: %w", err)
		}

		if deleted == 0 {
			return failure.NotFound(msgCampingNotFound)
		}

		imageURL = camping.ImageURL

		return nil
	})
	if err != nil {
		if failure.IsForeignKeyViolation(err) {
			return failure.ListingBooked
		}

		var fail *failure.Failure
		if !errors.As(err, &fail) {
			log.Error().Err(err).Str("camping_id", id).Msg("failed to delete camping")
		}

		return err
	}

	if imageURL != nil {
		s.removeImage(ctx, *imageURL)
	}

	return nil
}

func (s *serviceImpl) ListByOwner(ctx context.Context, ownerID string) (res []dto.CampingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".camping.ListByOwner")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	campings, err := s.repo.GetAll(ctx, shared.FilterByID(ownerID, model.FieldOwnerID, model.TableName), constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to get campings by owner")

		return nil, fmt.Errorf("failed to get campings by owner: %w", err)
	}

	if len(campings) == 0 {
		return nil, failure.NotFound(msgNoCampings)
	}

	return dto.FromModels(campings), nil
}

// UploadImage replaces the listing photo. The previous object is removed after the row points at the new one.
func (s *serviceImpl) UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".camping.UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	camping, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldOwnerID, model.FieldImageURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to get camping")

		return res, fmt.Errorf("failed to get camping: %w", err)
	}

	if camping.ID == "" {
		return res, failure.NotFound(msgCampingNotFound)
	}

	if err = shared.AuthorizeActor(ctx, camping.OwnerID); err != nil {
		return res, err
	}

	fileName := uuid.NewString() + strings.ToLower(filepath.Ext(req.Image.Filename))

	url, err := s.storage.UploadFile(ctx, path.Join(model.ImageDirectory, id), req.Image, fileName)
	if err != nil {
		return res, fmt.Errorf("failed to upload image: %w", err)
	}

	updatedFields := shared.TransformFields(dto.ImageUpdate{ImageURL: url}, shared.ActorFromContext(ctx).ID)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update camping image")

		s.removeImage(ctx, url)

		return res, fmt.Errorf("failed to update camping image: %w", err)
	}

	if camping.ImageURL != nil && *camping.ImageURL != url {
		s.removeImage(ctx, *camping.ImageURL)
	}

	res.ImageURL = url

	return res, nil
}

// removeImage deletes an object in the background. Failures only leave an orphaned object.
func (s *serviceImpl) removeImage(ctx context.Context, url string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.storage.DeleteFile(c, url); err != nil {
			log.Warn().Err(err).Str("url", url).Msg("failed to remove camping image")
		}
	}()
}
