package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"camping/infras/jwt"
	"camping/infras/otel"
	"camping/internal/domains/auth/model/dto"
	userModel "camping/internal/domains/user/model"
	userRepo "camping/internal/domains/user/repository"
	"camping/shared"
	"camping/shared/constant"
	gDto "camping/shared/dto"
	"camping/shared/failure"
	"camping/shared/password"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	msgDuplicateUser = "username or email already registered"
	msgUserNotFound  = "user not found"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) error
	ValidateToken(ctx context.Context, token string) (*jwt.Claims, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		otel:       otel,
		jwtService: jwt,
	}
}

// Register relies on the unique constraints on username and email; there is no pre-check.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor := shared.ActorFromContext(ctx)
	if req.Role == constant.RoleAdmin && !actor.IsAdmin() {
		return res, failure.Forbidden("only an admin can register another admin")
	}

	createdBy := actor.ID
	if actor.IsGuest() {
		createdBy = constant.ContextGuest
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToUserModel(createdBy, hashedPassword)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		if failure.IsUniqueViolation(err) {
			return res, failure.Conflict(msgDuplicateUser) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	res.UserID = user.ID

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.Get(ctx, gDto.And(gDto.Eq(userModel.TableName, userModel.FieldEmail, req.Email)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user by email")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.InvalidCredentials
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		if !errors.Is(err, password.ErrInvalidPassword) {
			log.Error().Err(err).Str("user_id", user.ID).Msg("failed to verify password")
		}

		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.InvalidCredentials
	}

	res.Token, err = s.jwtService.Generate(user.ID, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.UpdateProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = shared.AuthorizeActor(ctx, userID); err != nil {
		return err
	}

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	exist, err := s.userRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgUserNotFound)
	}

	// nothing to write, the profile stays as it is
	if req.IsEmpty() {
		return nil
	}

	update := dto.ProfileUpdate{
		Username: req.Username,
		Email:    req.Email,
	}

	if req.NewPassword != "" {
		update.Password, err = password.Hash(req.NewPassword)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash new password")

			return fmt.Errorf("failed to hash new password: %w", err)
		}
	}

	updatedFields := shared.TransformFields(update, shared.ActorFromContext(ctx).ID)

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		if failure.IsUniqueViolation(err) {
			return failure.Conflict(msgDuplicateUser) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update user")

		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func (s *serviceImpl) ValidateToken(ctx context.Context, token string) (claims *jwt.Claims, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.ValidateToken")
	defer scope.End()

	claims, err = s.jwtService.ValidateToken(token)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrExpiredToken):
			return nil, failure.Unauthorized("token has expired")
		case errors.Is(err, jwt.ErrInvalidClaim):
			return nil, failure.Unauthorized("token claims are invalid")
		default:
			return nil, failure.Unauthorized("invalid token")
		}
	}

	scope.SetAttribute("user.role", claims.Role)

	return claims, nil
}
