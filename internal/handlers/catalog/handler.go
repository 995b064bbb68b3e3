package catalog

import (
	"net/http"

	"drive4less/infras/otel"
	"drive4less/internal/domains/catalog/service"
	"drive4less/shared/constant"
	"drive4less/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/catalog", func(routerGroup chi.Router) {
		routerGroup.Get("/featured", handler.GetFeatured)
		routerGroup.Get("/vehicles", handler.GetVehicles)
		routerGroup.Get("/vehicles/{id}", handler.GetVehicleByID)
	})
}

// GetFeatured retrieves the newest available vehicles for the home page.
// @Summary Get featured vehicles
// @Description Retrieve the four newest available vehicles.
// @Tags Catalog
// @Accept json
// @Produce json
// @Success 200 {object} dto.FeaturedVehiclesResponse "Featured vehicles"
// @Failure 500 {object} response.Error
// @Router /v1/catalog/featured [get]
func (handler *Handler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeatured")
	defer scope.End()

	res, err := handler.service.Featured(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get featured vehicles")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Featured vehicles retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetVehicles retrieves the public vehicle listing.
// @Summary Browse the vehicle catalog
// @Description Retrieve the catalog with optional brand filter and sorting.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param brand query string false "Filter by brand, 'all' for everything"
// @Param sort query string false "Sort key: name, price or year"
// @Success 200 {object} dto.CatalogListResponse "Catalog listing"
// @Failure 500 {object} response.Error
// @Router /v1/catalog/vehicles [get]
func (handler *Handler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehicles")
	defer scope.End()

	brand := r.URL.Query().Get(constant.RequestParamBrand)
	sortKey := r.URL.Query().Get(constant.RequestParamSort)

	res, err := handler.service.List(ctx, brand, sortKey)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get catalog vehicles")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Catalog vehicles retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetVehicleByID retrieves a single vehicle for its detail page.
// @Summary Get a catalog vehicle by ID
// @Description Retrieve one vehicle with full display formatting.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} dto.CatalogVehicleDetailResponse "Vehicle detail"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/vehicles/{id} [get]
func (handler *Handler) GetVehicleByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehicleByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Detail(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get catalog vehicle detail")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Catalog vehicle detail retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
