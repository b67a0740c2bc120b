package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"camping/config"
	"camping/infras/kafka"
	"camping/infras/otel"
	"camping/internal/domains/booking/model"
	"camping/internal/domains/booking/model/dto"
	"camping/internal/domains/booking/repository"
	campingModel "camping/internal/domains/camping/model"
	campingRepo "camping/internal/domains/camping/repository"
	"camping/shared"
	"camping/shared/constant"
	"camping/shared/failure"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	msgCampingNotFound = "camping spot not found"
	msgBookingNotFound = "booking not found"
	msgNoBookings      = "No bookings yet"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	ListForUser(ctx context.Context, userID string) ([]dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Booking
	campingRepo campingRepo.Camping
	producer    kafka.Client
	cfg         *config.Config
	otel        otel.Otel
}

func New(repo repository.Booking, campingRepo campingRepo.Camping, producer kafka.Client, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:        repo,
		campingRepo: campingRepo,
		producer:    producer,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, err := shared.ResolveActor(ctx, req.UserID)
	if err != nil {
		return res, err
	}

	start, end, err := req.Period()
	if err != nil {
		return res, err
	}

	camping, err := s.campingRepo.Get(ctx, shared.FilterByID(req.CampingID, campingModel.FieldID, campingModel.TableName),
		campingModel.FieldID, campingModel.FieldPricePerNight)
	if err != nil {
		log.Error().Err(err).Msg("failed to get camping spot")

		return res, fmt.Errorf("failed to get camping spot: %w", err)
	}

	if camping.ID == "" {
		return res, failure.NotFound(msgCampingNotFound)
	}

	nights := dto.Nights(start, end)
	total := dto.TotalPrice(camping.PricePerNight, nights)

	scope.SetAttributes(map[string]any{
		"booking.nights":      int64(nights),
		"booking.total_price": total,
	})

	booking := req.ToModel(userID, start, end, total)

	if err = s.repo.Insert(ctx, booking); err != nil {
		if failure.IsForeignKeyViolation(err) {
			return res, failure.NotFound(msgCampingNotFound) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publish(ctx, model.EventCreated, booking)

	res.BookingID = booking.ID
	res.TotalPrice = booking.TotalPrice

	return res, nil
}

// ListForUser only lists the caller's own bookings, unless the caller is an admin.
func (s *serviceImpl) ListForUser(ctx context.Context, userID string) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListForUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = shared.AuthorizeActor(ctx, userID); err != nil {
		return nil, err
	}

	bookings, err := s.repo.GetAll(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName), model.FieldStartDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	if len(bookings) == 0 {
		return nil, failure.NotFound(msgNoBookings)
	}

	return dto.FromModels(bookings), nil
}

// Delete only removes bookings the caller owns, unless the caller is an admin.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return failure.NotFound(msgBookingNotFound)
	}

	if err = shared.AuthorizeActor(ctx, booking.UserID); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if deleted == 0 {
		return failure.NotFound(msgBookingNotFound)
	}

	s.publish(ctx, model.EventCancelled, booking)

	return nil
}

// publish sends the event in the background. A failed publish is logged and never surfaces to the caller.
func (s *serviceImpl) publish(ctx context.Context, eventType string, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		err := s.producer.SendMessages(c, s.cfg.Kafka.Topics.Booking, kafka.Message{
			Key:       booking.CampingID,
			EventType: eventType,
			Value:     dto.NewEvent(eventType, booking),
		})
		if err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Str("event", eventType).Msg("failed to publish booking event")
		}
	}()
}
