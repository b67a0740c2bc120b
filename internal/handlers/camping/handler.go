package camping

import (
	"camping/infras/otel"
	"camping/internal/domains/camping/model/dto"
	"camping/internal/domains/camping/service"
	"camping/shared"
	"camping/shared/constant"
	"camping/shared/failure"
	"camping/shared/validator"
	"camping/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Camping
	otel    otel.Otel
}

func New(service service.Camping, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/campings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCampings)
		routerGroup.Post("/", handler.CreateCamping)
		routerGroup.Get("/user/{id}", handler.GetCampingsByOwner)
		routerGroup.Get("/{id}", handler.GetCampingByID)
		routerGroup.Delete("/{id}", handler.DeleteCamping)
		routerGroup.Post("/{id}/image", handler.UploadImage)
	})
}

// GetCampings lists camping spots.
// @Summary Search camping spots
// @Description All filters are optional and ANDed. "All Locations" disables the location filter.
// @Tags Camping
// @Accept json
// @Produce json
// @Param location query string false "Exact location"
// @Param minPrice query number false "Minimum price per night"
// @Param maxPrice query number false "Maximum price per night"
// @Param onlyAvailable query boolean false "Only available spots"
// @Success 200 {object} response.Data[[]dto.CampingResponse] "List of camping spots"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/campings [get]
func (handler *Handler) GetCampings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCampings")
	defer scope.End()

	req, err := listRequestFromQuery(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	campings, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get campings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, campings)
}

func listRequestFromQuery(r *http.Request) (dto.ListCampingsRequest, error) {
	query := r.URL.Query()

	req := dto.ListCampingsRequest{
		Location: query.Get(constant.RequestParamLocation),
	}

	minPrice, err := shared.ConvertStringToFloat(query.Get(constant.RequestParamMinPrice))
	if err != nil {
		return req, failure.BadRequestFromString("minPrice must be a number")
	}

	maxPrice, err := shared.ConvertStringToFloat(query.Get(constant.RequestParamMaxPrice))
	if err != nil {
		return req, failure.BadRequestFromString("maxPrice must be a number")
	}

	req.MinPrice = minPrice
	req.MaxPrice = maxPrice

	if onlyAvailable := shared.ConvertStringToBool(query.Get(constant.RequestParamOnlyAvailable)); onlyAvailable != nil {
		req.OnlyAvailable = *onlyAvailable
	}

	return req, nil
}

// GetCampingByID retrieves a camping spot.
// @Summary Get a camping spot by ID
// @Tags Camping
// @Accept json
// @Produce json
// @Param id path string true "Camping ID"
// @Success 200 {object} response.Data[dto.CampingResponse] "Camping spot"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/campings/{id} [get]
func (handler *Handler) GetCampingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCampingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateVar(id, "uuid"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	camping, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get camping by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, camping)
}

// CreateCamping creates a camping spot.
// @Summary Create a camping spot
// @Description The owner defaults to the caller. Only an admin may create a spot for another user.
// @Tags Camping
// @Accept json
// @Produce json
// @Param request body dto.CreateCampingRequest true "Create Camping Request"
// @Success 201 {object} response.Data[dto.CreateCampingResponse] "Camping spot created"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/campings [post]
// @Security BearerAuth
func (handler *Handler) CreateCamping(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCamping")
	defer scope.End()

	req := dto.CreateCampingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create camping")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Camping created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// DeleteCamping deletes a camping spot.
// @Summary Delete a camping spot
// @Description A spot with any booking cannot be deleted.
// @Tags Camping
// @Accept json
// @Produce json
// @Param id path string true "Camping ID"
// @Success 200 {object} response.Message "Camping spot deleted"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/campings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCamping(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCamping")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateVar(id, "uuid"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete camping")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Camping deleted successfully")

	response.WithMessage(w, http.StatusOK, "Camping spot deleted successfully")
}

// GetCampingsByOwner lists the spots of one owner.
// @Summary Get camping spots by owner
// @Tags Camping
// @Accept json
// @Produce json
// @Param id path string true "Owner user ID"
// @Success 200 {object} response.Data[[]dto.CampingResponse] "Owner's camping spots"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/campings/user/{id} [get]
func (handler *Handler) GetCampingsByOwner(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCampingsByOwner")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateVar(id, "uuid"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	campings, err := handler.service.ListByOwner(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get campings by owner")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, campings)
}

// UploadImage stores the spot photo.
// @Summary Upload a camping spot image
// @Description Accepts png, jpeg or webp up to 5 MB. Replaces any previous image.
// @Tags Camping
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Camping ID"
// @Param file formData file true "Image file to upload"
// @Success 200 {object} response.Data[dto.UploadImageResponse] "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/campings/{id}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateVar(id, "uuid"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequest(err))

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{Image: fileHeader}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload camping image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Camping image uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}
