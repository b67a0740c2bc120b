package user

import (
	"camping/infras/otel"
	"camping/internal/domains/user/model/dto"
	"camping/internal/domains/user/service"
	"camping/shared/constant"
	"camping/shared/validator"
	"camping/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/users/{id}", handler.GetUserByID)
}

// GetUserByID retrieves a user by their ID.
// @Summary Get a user by ID
// @Description Returns an array with zero or one user. The password hash is never included.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Data[[]dto.UserResponse] "User details"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/users/{id} [get]
func (handler *Handler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserByID")
	defer scope.End()

	req := dto.GetUserRequest{ID: chi.URLParam(r, constant.RequestParamID)}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	users, err := handler.service.Get(ctx, req.ID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User retrieved successfully")

	response.WithJSON(w, http.StatusOK, users)
}
